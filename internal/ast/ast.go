// Package ast defines the Abstract Syntax Tree node types for Lox.
//
// The node set is closed: expressions and statements are tagged variants
// dispatched with exhaustive type switches in the resolver and interpreter.
// Node identity (pointer identity) is significant — the resolver's scope
// side-table is keyed by expression identity, not structural equality, so
// nodes must never be copied or deduplicated after parsing.
package ast

// Node is the base interface for all AST nodes.
type Node interface {
	// String returns a string representation of the node for debugging
	// and testing.
	String() string
}

// Expr represents any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a node that performs an action but doesn't produce a value.
type Stmt interface {
	Node
	stmtNode()
}
