// Package astcodec moves whole programs across the process boundary. The
// front end producing the AST lives outside this module; it hands programs
// over as versioned msgpack payloads which the driver and CLI decode.
package astcodec

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"tern/internal/ast"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// programPayload is the wire shape of one program.
type programPayload struct {
	Schema uint16
	Path   string // origin path of the source the AST was built from
	Stmts  []*ast.Stmt
}

// Encode serializes a program.
func Encode(prog *ast.Program, originPath string) ([]byte, error) {
	if prog == nil {
		return nil, fmt.Errorf("astcodec: nil program")
	}
	payload := programPayload{
		Schema: schemaVersion,
		Path:   originPath,
		Stmts:  prog.Stmts,
	}
	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return nil, fmt.Errorf("astcodec: encode: %w", err)
	}
	return data, nil
}

// Decode deserializes a program, validating the schema version.
func Decode(data []byte) (*ast.Program, string, error) {
	var payload programPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, "", fmt.Errorf("astcodec: decode: %w", err)
	}
	if payload.Schema != schemaVersion {
		return nil, "", fmt.Errorf("astcodec: schema version %d, want %d", payload.Schema, schemaVersion)
	}
	return &ast.Program{Stmts: payload.Stmts}, payload.Path, nil
}

// WriteFile encodes a program to path.
func WriteFile(path string, prog *ast.Program, originPath string) error {
	data, err := Encode(prog, originPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("astcodec: write %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes a program from path.
func ReadFile(path string) (*ast.Program, string, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("astcodec: read %s: %w", path, err)
	}
	return Decode(data)
}
