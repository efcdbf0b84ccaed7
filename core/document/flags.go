package document

import (
	"fmt"

	"layersync/core/layer"
	"layersync/core/scene"
)

var nodeFlagNames = []struct {
	flag layer.NodeFlag
	name string
}{
	{layer.NodeExcluded, "excluded"},
	{layer.NodeHidden, "hidden"},
	{layer.NodeHoldout, "holdout"},
	{layer.NodeIndirectOnly, "indirect_only"},
	{layer.NodePreviouslyExcluded, "previously_excluded"},
}

// NodeFlagNames lists the names of the flags set in f.
func NodeFlagNames(f layer.NodeFlag) []string {
	var names []string
	for _, fn := range nodeFlagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

// ParseNodeFlag returns the flag called name.
func ParseNodeFlag(name string) (layer.NodeFlag, error) {
	for _, fn := range nodeFlagNames {
		if fn.name == name {
			return fn.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown layer node flag %q", name)
}

func parseNodeFlags(names []string) (layer.NodeFlag, error) {
	var f layer.NodeFlag
	for _, name := range names {
		flag, err := ParseNodeFlag(name)
		if err != nil {
			return 0, err
		}
		f |= flag
	}
	return f, nil
}

func typeMask(names []string) (uint32, error) {
	var mask uint32
	for _, name := range names {
		typ, err := scene.ParseObjectType(name)
		if err != nil {
			return 0, err
		}
		mask |= 1 << typ
	}
	return mask, nil
}

func typeNames(mask uint32) []string {
	var names []string
	for typ := scene.ObjectEmpty; typ <= scene.ObjectGreasePencil; typ++ {
		if mask&(1<<typ) != 0 {
			names = append(names, typ.String())
		}
	}
	return names
}
