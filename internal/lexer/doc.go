// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package lexer scans SDL source bytes into a token stream. It is fail-fast:
// a single unrecognized byte or unterminated string literal produces one
// diagnostic and halts scanning immediately (§4.2 of the governing
// specification). Downstream stages never see a partial token stream after
// a lexical error.
package lexer
