package template

// Operation is one HTTP endpoint exposed by the generated router. The
// controller exports one handler per operation and the router imports
// exactly those handlers, so both are rendered from the same list.
type Operation struct {
	Name      string // controller handler name
	Method    string // Express router method, lower case
	Path      string // route path below /api
	Service   string // service method the handler delegates to
	Summary   string
	Protected bool // guarded by the auth middleware
}

// Operations returns the endpoints generated for key in route order.
func Operations(key VariantKey) []Operation {
	if !key.persistent() {
		return []Operation{
			{Name: "sayHello", Method: "get", Path: "/hello", Service: "getMessage", Summary: "Greeting", Protected: key.Auth},
		}
	}

	var ops []Operation
	if key.Auth {
		ops = append(ops,
			Operation{Name: "register", Method: "post", Path: "/register", Service: "register", Summary: "Register a new user"},
			Operation{Name: "login", Method: "post", Path: "/login", Service: "login", Summary: "Log in and receive a token"},
		)
	} else {
		ops = append(ops,
			Operation{Name: "createUser", Method: "post", Path: "/users", Service: "createUser", Summary: "Create a user"},
		)
	}
	return append(ops,
		Operation{Name: "listUsers", Method: "get", Path: "/users", Service: "getAllUsers", Summary: "List users", Protected: key.Auth},
		Operation{Name: "getUser", Method: "get", Path: "/users/:id", Service: "getUserById", Summary: "Get a user by ID", Protected: key.Auth},
		Operation{Name: "updateUser", Method: "put", Path: "/users/:id", Service: "updateUser", Summary: "Update a user", Protected: key.Auth},
		Operation{Name: "deleteUser", Method: "delete", Path: "/users/:id", Service: "deleteUser", Summary: "Delete a user", Protected: key.Auth},
	)
}
