// Package cellprofile loads named cell configurations from TOML files, the
// control-region analogue of gocat's pkg/profiles: instead of a named radio
// preset, a profile here names a complete cellcfg.Params.
package cellprofile

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ltestack/ctrlregs/pkg/cellcfg"
)

// Profile is the on-disk representation of a named cell configuration.
type Profile struct {
	Name          string `toml:"name"`
	Description   string `toml:"description"`
	CellID        int    `toml:"cell_id"`
	NumPRB        int    `toml:"num_prb"`
	NumPorts      int    `toml:"num_ports"`
	CyclicPrefix  string `toml:"cyclic_prefix"`  // "normal" or "extended"
	PhichLength   string `toml:"phich_length"`   // "normal" or "extended"
	PhichResource string `toml:"phich_resource"` // "1/6", "1/2", "1", or "2"
}

// Load parses a profile from a TOML file at path.
func Load(path string) (*Profile, error) {
	var p Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("loading cell profile %s: %w", path, err)
	}
	return &p, nil
}

// Params converts the profile's textual fields into a validated
// cellcfg.Params.
func (p *Profile) Params() (*cellcfg.Params, error) {
	cp, err := parseCyclicPrefix(p.CyclicPrefix)
	if err != nil {
		return nil, err
	}

	phichLen, err := parsePhichLength(p.PhichLength)
	if err != nil {
		return nil, err
	}

	phichRes, err := parsePhichResource(p.PhichResource)
	if err != nil {
		return nil, err
	}

	return cellcfg.New(p.CellID, p.NumPRB, p.NumPorts, cp, phichLen, phichRes)
}

func parseCyclicPrefix(s string) (cellcfg.CyclicPrefix, error) {
	switch s {
	case "normal", "":
		return cellcfg.CPNormal, nil
	case "extended":
		return cellcfg.CPExtended, nil
	default:
		return 0, fmt.Errorf("%w: unknown cyclic_prefix %q", errInvalidField, s)
	}
}

func parsePhichLength(s string) (cellcfg.PhichLength, error) {
	switch s {
	case "normal", "":
		return cellcfg.PhichNormal, nil
	case "extended":
		return cellcfg.PhichExtended, nil
	default:
		return 0, fmt.Errorf("%w: unknown phich_length %q", errInvalidField, s)
	}
}

func parsePhichResource(s string) (cellcfg.PhichResource, error) {
	switch s {
	case "1/6", "":
		return cellcfg.PhichResOneSixth, nil
	case "1/2":
		return cellcfg.PhichResOneHalf, nil
	case "1":
		return cellcfg.PhichResOne, nil
	case "2":
		return cellcfg.PhichResTwo, nil
	default:
		return 0, fmt.Errorf("%w: unknown phich_resource %q", errInvalidField, s)
	}
}
