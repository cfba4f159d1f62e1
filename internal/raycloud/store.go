package raycloud

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Assignments is the exported form of a Partition: center key to the
// coordinates of its points.
type Assignments map[string][][3]Real

const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// formatFor picks the encoding from a file extension; anything that is not
// .msgpack/.mpk is JSON.
func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

// MarshalAssignments encodes a in the given format.
func MarshalAssignments(a Assignments, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(a, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(a)
	default:
		return nil, fmt.Errorf("unknown assignments format %q", format)
	}
}

// UnmarshalAssignments decodes data in the given format.
func UnmarshalAssignments(data []byte, format string) (Assignments, error) {
	var a Assignments
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &a)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &a)
	default:
		return nil, fmt.Errorf("unknown assignments format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode assignments: %w", err)
	}
	return a, nil
}

// SaveAssignments writes a to path, encoding by extension.
func SaveAssignments(path string, a Assignments) error {
	data, err := MarshalAssignments(a, formatFor(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write assignments: %w", err)
	}
	return nil
}

// LoadAssignments reads an export written by SaveAssignments.
func LoadAssignments(path string) (Assignments, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assignments: %w", err)
	}
	return UnmarshalAssignments(data, formatFor(path))
}
