package animation

import "fmt"

// AnimationID is an opaque handle to an animation stored in an [Animator].
//
// An id stays valid only while its slot holds the same occupant: removed
// slots bump their version on reuse, so a stale id is detected and ignored
// rather than silently aliasing a newer animation. The zero value is never a
// valid id.
type AnimationID struct {
	offset  uint32
	version uint32
}

// Valid reports whether the id could ever refer to a stored animation.
// It does not check whether the animation is still stored.
func (id AnimationID) Valid() bool {
	return id.version != 0
}

func (id AnimationID) String() string {
	return fmt.Sprintf("AnimationID(%dv%d)", id.offset, id.version)
}

// storageEntry is one slot of the storage. A non-busy entry is part of the
// free list; its version is the version of its last occupant.
type storageEntry[V any] struct {
	version uint32
	busy    bool
	// next is offset+1 of the next free entry; 0 terminates the free list.
	// Only meaningful while not busy.
	next  uint32
	value V
}

// animationStorage is a basic slot map: a growable array of versioned
// entries whose free slots form a singly linked list. insert, get and
// contains are O(1); removeIf is O(n) and is the only removal path.
//
// The zero value is an empty storage.
type animationStorage[V any] struct {
	contents []storageEntry[V]
	size     uint32
	// firstFree is offset+1 of the head of the free list; 0 means none.
	firstFree uint32
}

func (s *animationStorage[V]) count() uint32 {
	return s.size
}

func (s *animationStorage[V]) empty() bool {
	return s.size == 0
}

// insert stores value and returns its id, reusing the head of the free list
// before growing the backing array. Reused slots get a bumped version.
func (s *animationStorage[V]) insert(value V) AnimationID {
	s.size++
	if s.firstFree != 0 {
		offset := s.firstFree - 1
		entry := &s.contents[offset]
		if entry.busy {
			panic("animation storage free list pointing to busy entry")
		}
		s.firstFree = entry.next
		version := entry.version + 1
		if version == 0 { // wrapped; version must stay nonzero
			version = 1
		}
		entry.version = version
		entry.busy = true
		entry.next = 0
		entry.value = value
		return AnimationID{offset: offset, version: version}
	}

	id := AnimationID{offset: uint32(len(s.contents)), version: 1}
	s.contents = append(s.contents, storageEntry[V]{version: 1, busy: true, value: value})
	return id
}

// removeIf removes every busy entry for which f returns true, pushing the
// slot onto the free list. Entries are visited in offset order.
func (s *animationStorage[V]) removeIf(f func(AnimationID, *V) bool) {
	for i := range s.contents {
		entry := &s.contents[i]
		if !entry.busy {
			continue
		}
		if f(AnimationID{offset: uint32(i), version: entry.version}, &entry.value) {
			var zero V
			entry.busy = false
			entry.next = s.firstFree
			entry.value = zero
			s.firstFree = uint32(i) + 1
			s.size--
		}
	}
}

// contains reports whether id currently resolves to a stored value.
func (s *animationStorage[V]) contains(id AnimationID) bool {
	return s.get(id) != nil
}

// get returns the value for id, or nil for absent or stale ids.
func (s *animationStorage[V]) get(id AnimationID) *V {
	if int64(id.offset) >= int64(len(s.contents)) {
		return nil
	}
	entry := &s.contents[id.offset]
	if !entry.busy || entry.version != id.version {
		return nil
	}
	return &entry.value
}
