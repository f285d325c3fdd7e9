package registry

import (
	"fmt"
)

type server struct {
	load    int
	full    bool
	objects map[uint64]struct{}
}

// ServerSet tracks per-server load against a fixed load cap. The cap
// is derived from the expected object population at construction and
// never recomputed. Invariants held at all times: load equals the
// number of contained objects, full equals (load == cap), and load
// never exceeds cap.
type ServerSet struct {
	cap       int
	servers   []server
	full      int
	assigns   int
	firstFull int // assigns when the first server filled; 0 if none yet
}

// NewServerSet creates count servers, all empty, with the given load cap.
func NewServerSet(count, loadCap int) (*ServerSet, error) {
	if count <= 0 {
		return nil, fmt.Errorf("server count must be positive, got %d", count)
	}
	if loadCap < 1 {
		return nil, fmt.Errorf("load cap must be at least 1, got %d", loadCap)
	}
	s := &ServerSet{
		cap:     loadCap,
		servers: make([]server, count),
	}
	for i := range s.servers {
		s.servers[i].objects = make(map[uint64]struct{})
	}
	return s, nil
}

// Count returns the number of servers.
func (s *ServerSet) Count() int { return len(s.servers) }

// LoadCap returns the per-server object capacity.
func (s *ServerSet) LoadCap() int { return s.cap }

// Load returns the number of objects the server currently holds.
func (s *ServerSet) Load(id int) int { return s.servers[id].load }

// IsFull reports whether the server is at its load cap.
func (s *ServerSet) IsFull(id int) bool { return s.servers[id].full }

// FullCount returns the number of servers at their load cap.
func (s *ServerSet) FullCount() int { return s.full }

// Loads returns a copy of all server loads, indexed by server id.
func (s *ServerSet) Loads() []int {
	loads := make([]int, len(s.servers))
	for i := range s.servers {
		loads[i] = s.servers[i].load
	}
	return loads
}

// Contains reports whether the server holds the object.
func (s *ServerSet) Contains(id int, object uint64) bool {
	_, ok := s.servers[id].objects[object]
	return ok
}

// Assign places the object onto the server, incrementing its load and
// raising the full flag when the cap is reached. Assigning to a server
// that is already full is a contract violation.
func (s *ServerSet) Assign(id int, object uint64) error {
	srv := &s.servers[id]
	if srv.full {
		return fmt.Errorf("server %d is already at load cap %d", id, s.cap)
	}
	srv.objects[object] = struct{}{}
	srv.load++
	s.assigns++
	if srv.load == s.cap {
		srv.full = true
		s.full++
		if s.firstFull == 0 {
			s.firstFull = s.assigns
		}
	}
	return nil
}

// AssignsAtFirstFull returns how many assignments had been made when
// the first server reached its load cap. ok is false if no server has
// ever filled.
func (s *ServerSet) AssignsAtFirstFull() (n int, ok bool) {
	return s.firstFull, s.firstFull > 0
}

// Unassign removes the object from the server, decrementing its load
// and clearing the full flag. It reports whether the server was full
// immediately before the removal.
func (s *ServerSet) Unassign(id int, object uint64) (wasFull bool, err error) {
	srv := &s.servers[id]
	if _, ok := srv.objects[object]; !ok {
		return false, fmt.Errorf("server %d does not hold object %d", id, object)
	}
	delete(srv.objects, object)
	srv.load--
	wasFull = srv.full
	if srv.full {
		srv.full = false
		s.full--
	}
	return wasFull, nil
}
