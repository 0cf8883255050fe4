package git

// Ident exposes ident for tests.
var Ident = ident
