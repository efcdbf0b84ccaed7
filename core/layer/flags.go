package layer

// NodeFlag holds the persistent, user-edited state of a LayerNode.
type NodeFlag uint16

const (
	// NodeExcluded removes the node's objects from the view layer.
	NodeExcluded NodeFlag = 1 << iota
	// NodeHidden hides the node in the view layer without excluding it.
	NodeHidden
	NodeHoldout
	NodeIndirectOnly
	// NodePreviouslyExcluded remembers the exclusion state a node had before an
	// ancestor got excluded, so re-enabling the ancestor restores it.
	NodePreviouslyExcluded
)

// RuntimeFlag is recomputed on every sync and never persisted.
type RuntimeFlag uint8

const (
	RuntimeHasObjects RuntimeFlag = 1 << iota
	RuntimeHideViewport
	RuntimeVisibleViewLayer
)

// BaseFlag holds the evaluated state of a Base.
type BaseFlag uint16

const (
	BaseSelected BaseFlag = 1 << iota
	BaseSelectable
	BaseVisibleDepsgraph
	BaseVisibleViewLayer
	BaseEnabledViewport
	BaseEnabledRender
	BaseHoldout
	BaseIndirectOnly
	// BaseHidden is the per view layer hide toggle set by the user.
	BaseHidden
)

// collectionBaseFlags are the base flags derived from collection settings.
const collectionBaseFlags = BaseVisibleDepsgraph | BaseVisibleViewLayer | BaseSelectable |
	BaseEnabledViewport | BaseEnabledRender | BaseHoldout | BaseIndirectOnly

// allLocalBits is the default local visibility mask: visible everywhere.
const allLocalBits = ^uint16(0)
