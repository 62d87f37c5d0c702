package lar

import (
	"fmt"
	"strings"
)

// noCompressPrefix forces an entry to be stored uncompressed.
const noCompressPrefix = "nocompress:"

// AddSpec describes one file to add.
type AddSpec struct {
	// Source is the path read from disk.
	Source string
	// Name is recorded in the entry header. Defaults to Source.
	Name string
	// NoCompress stores the payload verbatim regardless of AddOptions.
	NoCompress bool
}

// ParseAddSpec parses the command-line form of an add argument:
//
//	[nocompress:][./]source[:stored-name]
//
// A leading "./" is dropped from the source (and so from the default stored
// name). An empty source or an empty name after ':' is ErrInvalidName.
func ParseAddSpec(arg string) (AddSpec, error) {
	var spec AddSpec
	if rest, ok := strings.CutPrefix(arg, noCompressPrefix); ok {
		spec.NoCompress = true
		arg = rest
	}
	arg = strings.TrimPrefix(arg, "./")

	source, name, found := strings.Cut(arg, ":")
	if found && name == "" {
		return AddSpec{}, fmt.Errorf("%w: empty stored name in %q", ErrInvalidName, arg)
	}
	if !found {
		name = source
	}
	if source == "" {
		return AddSpec{}, fmt.Errorf("%w: empty source path", ErrInvalidName)
	}
	spec.Source = source
	spec.Name = name
	return spec, nil
}
