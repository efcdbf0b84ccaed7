package scene

import "fmt"

var objectTypeNames = [...]string{
	ObjectEmpty:        "empty",
	ObjectMesh:         "mesh",
	ObjectCurve:        "curve",
	ObjectCamera:       "camera",
	ObjectLight:        "light",
	ObjectArmature:     "armature",
	ObjectGreasePencil: "grease_pencil",
}

func (t ObjectType) String() string {
	if int(t) < len(objectTypeNames) {
		return objectTypeNames[t]
	}
	return fmt.Sprintf("ObjectType(%d)", uint8(t))
}

// ParseObjectType is the inverse of ObjectType.String.
func ParseObjectType(s string) (ObjectType, error) {
	for i, name := range objectTypeNames {
		if name == s {
			return ObjectType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown object type %q", s)
}

var modeNames = []struct {
	mode ObjectMode
	name string
}{
	{ModeEdit, "edit"},
	{ModeSculpt, "sculpt"},
	{ModeVertexPaint, "vertex_paint"},
	{ModeWeightPaint, "weight_paint"},
	{ModeTexturePaint, "texture_paint"},
	{ModePose, "pose"},
}

// Names lists the set modes. Object mode is the empty list.
func (m ObjectMode) Names() []string {
	var names []string
	for _, mn := range modeNames {
		if m&mn.mode != 0 {
			names = append(names, mn.name)
		}
	}
	return names
}

// ParseObjectMode combines mode names into a mask.
func ParseObjectMode(names []string) (ObjectMode, error) {
	var m ObjectMode
next:
	for _, name := range names {
		for _, mn := range modeNames {
			if mn.name == name {
				m |= mn.mode
				continue next
			}
		}
		return 0, fmt.Errorf("unknown object mode %q", name)
	}
	return m, nil
}
