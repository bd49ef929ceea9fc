// Package models provides the shared enums used to describe a generated
// Express project.
//
// # Choices
//
// A project is described by three enumerated choices and two switches:
//   - [Language]: JavaScript or TypeScript output
//   - [PackageManager]: npm, yarn or pnpm
//   - [Database]: MongoDB, MySQL, PostgreSQL or none
//
// Every enum exposes IsValid and a Valid* list. Parse* functions accept
// user input case-insensitively, including common aliases:
//
//	lang, err := models.ParseLanguage("ts") // models.LanguageTypeScript
//	db, err := models.ParseDatabase("pg")   // models.DatabasePostgreSQL
//
// # Database Profiles
//
// [Database.Profile] returns the row describing how a database is wired:
// its family (document, relational or none), the Sequelize dialect, the
// ORM package and the runtime packages it requires.
package models
