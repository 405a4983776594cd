package bintree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Encoding constants.
const (
	// NullToken marks an absent child in the encoded form.
	NullToken = "null"

	// Separator joins tokens in the encoded form.
	Separator = ","
)

// Serialization errors.
var (
	ErrUnexpectedEnd  = errors.New("encoded tree ends before it is complete")
	ErrTrailingTokens = errors.New("encoded tree has trailing tokens")
	ErrInvalidToken   = errors.New("invalid token in encoded tree")
)

// Serialize encodes the tree in pre-order: each node writes its value, then
// its left and right subtrees, with NullToken for an absent child.
// An empty or nil tree encodes as "null".
func Serialize[T constraints.Signed](t *Tree[T]) string {
	var sb strings.Builder
	var root *Node[T]
	if t != nil {
		root = t.Root
	}
	writeNode(&sb, root)
	return sb.String()
}

func writeNode[T constraints.Signed](sb *strings.Builder, n *Node[T]) {
	if n == nil {
		sb.WriteString(NullToken)
		return
	}
	sb.WriteString(strconv.FormatInt(int64(n.Value), 10))
	sb.WriteString(Separator)
	writeNode(sb, n.Left)
	sb.WriteString(Separator)
	writeNode(sb, n.Right)
}

// Deserialize decodes a tree produced by Serialize. The input must describe
// exactly one complete tree; a short stream, leftover tokens, or a value that
// is not an integer in range for T is an error, and no tree is returned.
func Deserialize[T constraints.Signed](s string) (*Tree[T], error) {
	d := &decoder[T]{tokens: strings.Split(s, Separator)}

	root, err := d.node()
	if err != nil {
		return nil, err
	}
	if d.pos < len(d.tokens) {
		return nil, fmt.Errorf("%w: %d unread starting at token %d",
			ErrTrailingTokens, len(d.tokens)-d.pos, d.pos)
	}

	return New(root), nil
}

// decoder consumes tokens left to right through an explicit cursor.
type decoder[T constraints.Signed] struct {
	tokens []string
	pos    int
}

// next returns the next token and advances the cursor.
func (d *decoder[T]) next() (string, error) {
	if d.pos >= len(d.tokens) {
		return "", fmt.Errorf("%w: need token %d", ErrUnexpectedEnd, d.pos)
	}
	tok := strings.TrimSpace(d.tokens[d.pos])
	d.pos++
	return tok, nil
}

// node decodes one subtree, consuming exactly the tokens that describe it.
func (d *decoder[T]) node() (*Node[T], error) {
	tok, err := d.next()
	if err != nil {
		return nil, err
	}
	if tok == NullToken {
		return nil, nil
	}

	value, err := parseValue[T](tok)
	if err != nil {
		return nil, fmt.Errorf("%w at token %d: %q", ErrInvalidToken, d.pos-1, tok)
	}

	n := Leaf(value)
	if n.Left, err = d.node(); err != nil {
		return nil, err
	}
	if n.Right, err = d.node(); err != nil {
		return nil, err
	}
	return n, nil
}

// parseValue parses a base-10 integer and rejects values that overflow T.
func parseValue[T constraints.Signed](tok string) (T, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, err
	}
	if int64(T(v)) != v {
		return 0, strconv.ErrRange
	}
	return T(v), nil
}

// MarshalText implements encoding.TextMarshaler.
func (t *Tree[T]) MarshalText() ([]byte, error) {
	return []byte(Serialize(t)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error the tree is
// left unchanged.
func (t *Tree[T]) UnmarshalText(text []byte) error {
	decoded, err := Deserialize[T](string(text))
	if err != nil {
		return err
	}
	t.Root = decoded.Root
	return nil
}
