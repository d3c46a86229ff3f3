// Package warehouse implements the schema engine of an in-memory, schema-driven
// JSON document database: a declarative schema compiler that produces
// path-indexed getter/setter/import/export pipelines plus MongoDB-style query,
// update and sort compilers over arbitrary document shapes.
package warehouse
