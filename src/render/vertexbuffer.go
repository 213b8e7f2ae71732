package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"unsafe"

	"github.com/vulkan-go/vulkan"

	"meshderive/src/geometry"
)

// VertexStride is the byte size of one packed point (three float32).
const VertexStride = Planes * 4

var errNoMemoryType = errors.New("no host-visible coherent memory type")

// BindingDescription describes the packed point stream as vertex binding 0.
func BindingDescription() vulkan.VertexInputBindingDescription {
	return vulkan.VertexInputBindingDescription{
		Binding:   0,
		Stride:    VertexStride,
		InputRate: vulkan.VertexInputRateVertex,
	}
}

// AttributeDescriptions maps the position to shader location 0.
func AttributeDescriptions() []vulkan.VertexInputAttributeDescription {
	return []vulkan.VertexInputAttributeDescription{{
		Location: 0,
		Binding:  0,
		Format:   vulkan.FormatR32g32b32Sfloat,
		Offset:   0,
	}}
}

// Topology returns the primitive topology a pipeline should draw p with.
func Topology(p Primitive) vulkan.PrimitiveTopology {
	if p == Triangles {
		return vulkan.PrimitiveTopologyTriangleList
	}
	return vulkan.PrimitiveTopologyLineList
}

// InputAssembly returns the input assembly state for p.
func InputAssembly(p Primitive) vulkan.PipelineInputAssemblyStateCreateInfo {
	return vulkan.PipelineInputAssemblyStateCreateInfo{
		SType:    vulkan.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology: Topology(p),
	}
}

// PackVertices encodes buf as little-endian float32 triples.
func PackVertices(buf geometry.Buffer) []byte {
	vals := buf.Float32s()
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}
	return out
}

// VertexBuffer is a device buffer holding one emitted point list.
type VertexBuffer struct {
	Buffer    vulkan.Buffer
	Memory    vulkan.DeviceMemory
	Count     uint32
	Primitive Primitive
}

// bufferDevice is the set of device calls an upload makes. vulkanDevice is
// the real one.
type bufferDevice interface {
	createBuffer(size vulkan.DeviceSize) (vulkan.Buffer, error)
	memoryRequirements(buf vulkan.Buffer) vulkan.MemoryRequirements
	allocate(size vulkan.DeviceSize, typeIndex uint32) (vulkan.DeviceMemory, error)
	write(mem vulkan.DeviceMemory, data []byte) error
	bind(buf vulkan.Buffer, mem vulkan.DeviceMemory) error
	destroyBuffer(buf vulkan.Buffer)
	free(mem vulkan.DeviceMemory)
}

type vulkanDevice struct {
	device vulkan.Device
}

func (d vulkanDevice) createBuffer(size vulkan.DeviceSize) (vulkan.Buffer, error) {
	var buf vulkan.Buffer
	ret := vulkan.CreateBuffer(d.device, &vulkan.BufferCreateInfo{
		SType:       vulkan.StructureTypeBufferCreateInfo,
		Size:        size,
		Usage:       vulkan.BufferUsageFlags(vulkan.BufferUsageVertexBufferBit),
		SharingMode: vulkan.SharingModeExclusive,
	}, nil, &buf)
	if IsError(ret) {
		return buf, NewError(ret)
	}
	return buf, nil
}

func (d vulkanDevice) memoryRequirements(buf vulkan.Buffer) vulkan.MemoryRequirements {
	var reqs vulkan.MemoryRequirements
	vulkan.GetBufferMemoryRequirements(d.device, buf, &reqs)
	reqs.Deref()
	return reqs
}

func (d vulkanDevice) allocate(size vulkan.DeviceSize, typeIndex uint32) (vulkan.DeviceMemory, error) {
	var mem vulkan.DeviceMemory
	ret := vulkan.AllocateMemory(d.device, &vulkan.MemoryAllocateInfo{
		SType:           vulkan.StructureTypeMemoryAllocateInfo,
		AllocationSize:  size,
		MemoryTypeIndex: typeIndex,
	}, nil, &mem)
	if IsError(ret) {
		return mem, NewError(ret)
	}
	return mem, nil
}

func (d vulkanDevice) write(mem vulkan.DeviceMemory, data []byte) error {
	var mapped unsafe.Pointer
	ret := vulkan.MapMemory(d.device, mem, 0, vulkan.DeviceSize(len(data)), 0, &mapped)
	if IsError(ret) {
		return NewError(ret)
	}
	vulkan.Memcopy(mapped, data)
	vulkan.UnmapMemory(d.device, mem)
	return nil
}

func (d vulkanDevice) bind(buf vulkan.Buffer, mem vulkan.DeviceMemory) error {
	if ret := vulkan.BindBufferMemory(d.device, buf, mem, 0); IsError(ret) {
		return NewError(ret)
	}
	return nil
}

func (d vulkanDevice) destroyBuffer(buf vulkan.Buffer) {
	vulkan.DestroyBuffer(d.device, buf, nil)
}

func (d vulkanDevice) free(mem vulkan.DeviceMemory) {
	vulkan.FreeMemory(d.device, mem, nil)
}

// NewVertexBuffer creates a host-visible vertex buffer on the context's
// device and copies buf into it. An empty buffer allocates nothing and
// returns a VertexBuffer with Count 0.
func NewVertexBuffer(ctx Context, p Primitive, buf geometry.Buffer) (*VertexBuffer, error) {
	return upload(vulkanDevice{device: ctx.Device()}, ctx.MemoryProperties(), p, buf)
}

func upload(dev bufferDevice, props vulkan.PhysicalDeviceMemoryProperties, p Primitive, buf geometry.Buffer) (vb *VertexBuffer, err error) {
	defer CheckError(&err)

	if n := buf.Len() % p.Vertices(); n != 0 {
		return nil, fmt.Errorf("%s buffer of %d points has %d trailing points", p, buf.Len(), n)
	}
	if buf.Len() == 0 {
		return &VertexBuffer{Primitive: p}, nil
	}
	data := PackVertices(buf)

	handle, err := dev.createBuffer(vulkan.DeviceSize(len(data)))
	if err != nil {
		return nil, err
	}
	reqs := dev.memoryRequirements(handle)
	typeIndex, ok := findMemoryType(props, reqs.MemoryTypeBits, hostMemory)
	if !ok {
		dev.destroyBuffer(handle)
		return nil, errNoMemoryType
	}
	mem, err := dev.allocate(reqs.Size, typeIndex)
	if err != nil {
		dev.destroyBuffer(handle)
		return nil, err
	}

	vb = &VertexBuffer{Buffer: handle, Memory: mem, Count: uint32(buf.Len()), Primitive: p}
	if err := dev.write(mem, data); err != nil {
		vb.destroy(dev)
		return nil, err
	}
	if err := dev.bind(handle, mem); err != nil {
		vb.destroy(dev)
		return nil, err
	}
	return vb, nil
}

func (vb *VertexBuffer) destroy(dev bufferDevice) {
	if vb.Count == 0 {
		return
	}
	dev.destroyBuffer(vb.Buffer)
	dev.free(vb.Memory)
}

// VertexBufferSink uploads every emitted buffer to the device, replacing
// (and releasing) the previous buffer of the same destination.
type VertexBufferSink struct {
	dev   bufferDevice
	props vulkan.PhysicalDeviceMemoryProperties

	mu      sync.Mutex
	buffers map[string]*VertexBuffer
}

func NewVertexBufferSink(ctx Context) *VertexBufferSink {
	return newVertexBufferSink(vulkanDevice{device: ctx.Device()}, ctx.MemoryProperties())
}

func newVertexBufferSink(dev bufferDevice, props vulkan.PhysicalDeviceMemoryProperties) *VertexBufferSink {
	return &VertexBufferSink{dev: dev, props: props, buffers: make(map[string]*VertexBuffer)}
}

func (s *VertexBufferSink) Emit(dest string, p Primitive, buf geometry.Buffer) error {
	vb, err := upload(s.dev, s.props, p, buf)
	if err != nil {
		return fmt.Errorf("upload %q: %w", dest, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.buffers[dest]; ok {
		old.destroy(s.dev)
	}
	s.buffers[dest] = vb
	geometry.Logger().Debug("vertex buffer uploaded",
		slog.String("dest", dest),
		slog.Uint64("vertices", uint64(vb.Count)))
	return nil
}

// Buffer returns the current buffer of dest.
func (s *VertexBufferSink) Buffer(dest string) (*VertexBuffer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vb, ok := s.buffers[dest]
	return vb, ok
}

// Release frees every buffer the sink owns. The device must be idle.
func (s *VertexBufferSink) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for dest, vb := range s.buffers {
		vb.destroy(s.dev)
		delete(s.buffers, dest)
	}
}
