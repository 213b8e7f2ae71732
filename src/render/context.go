package render

import (
	"github.com/vulkan-go/vulkan"
)

// Context is the slice of an initialized Vulkan device that vertex uploads
// need. The host owns the device and its lifetime.
type Context interface {
	Device() vulkan.Device
	MemoryProperties() vulkan.PhysicalDeviceMemoryProperties
}

// hostMemory is the property set every uploaded buffer needs: mappable and
// coherent, so no explicit flush is required after Memcopy.
const hostMemory = vulkan.MemoryPropertyHostVisibleBit | vulkan.MemoryPropertyHostCoherentBit

// findMemoryType picks the first memory type allowed by typeBits that has
// all of the wanted property flags.
func findMemoryType(props vulkan.PhysicalDeviceMemoryProperties, typeBits uint32, want vulkan.MemoryPropertyFlagBits) (uint32, bool) {
	props.Deref()
	for i := uint32(0); i < props.MemoryTypeCount && i < vulkan.MaxMemoryTypes; i++ {
		if typeBits&(1<<i) == 0 {
			continue
		}
		props.MemoryTypes[i].Deref()
		flags := vulkan.MemoryPropertyFlagBits(props.MemoryTypes[i].PropertyFlags)
		if flags&want == want {
			return i, true
		}
	}
	return 0, false
}
