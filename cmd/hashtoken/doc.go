// Command hashtoken manages the admin token that guards format registration
// in formatd.
//
// Usage:
//
//	hashtoken <command>
//
// Commands:
//
//	hash           Read a token twice without echo and print its bcrypt hash.
//	               Put the output in ADMIN_TOKEN_HASH.
//
//	verify <hash>  Read a token without echo and report whether it matches
//	               the given hash.
//
//	status         Report whether ADMIN_TOKEN_HASH holds a usable hash and how
//	               many formats are stored in the database.
//
// Prompts are written to stderr so the hash printed by "hash" can be
// redirected on its own.
//
// Environment:
//
//	ADMIN_TOKEN_HASH - bcrypt hash checked by status
//	DATABASE_DIR     - Path to database directory (default: /database)
package main
