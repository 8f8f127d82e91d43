package sapling

import (
	"fmt"
	"os"
	"slices"

	"github.com/ErikKalkoken/go-set"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Groups organizes entity instances into named, ordered folders. An
// instance belongs to at most one group.
type Groups struct {
	names   []string
	members map[string][]uuid.UUID
}

// groupsFile is the on-disk form of Groups.
type groupsFile struct {
	Groups []groupEntry `yaml:"groups"`
}

type groupEntry struct {
	Name    string      `yaml:"name"`
	Members []uuid.UUID `yaml:"members"`
}

// NewGroups returns an empty group list.
func NewGroups() *Groups {
	return &Groups{members: make(map[string][]uuid.UUID)}
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.names)
}

// Names returns the group names in creation order.
func (g *Groups) Names() []string {
	return slices.Clone(g.names)
}

// HasGroup reports whether a group called name exists.
func (g *Groups) HasGroup(name string) bool {
	_, ok := g.members[name]
	return ok
}

// Members returns the instances in the group, in order.
func (g *Groups) Members(name string) []uuid.UUID {
	return slices.Clone(g.members[name])
}

// AddGroup creates a group and returns the name it was created under.
// Taken names get the current group count appended until the result is
// free, so adding "Props" twice yields "Props" and "Props 1".
func (g *Groups) AddGroup(name string) string {
	for g.HasGroup(name) {
		name = fmt.Sprintf("%s %d", name, g.Len())
	}
	g.names = append(g.names, name)
	g.members[name] = nil
	return name
}

// RenameGroup renames a group in place. It fails when from does not exist or
// to is empty or taken.
func (g *Groups) RenameGroup(from, to string) bool {
	if to == "" || !g.HasGroup(from) || g.HasGroup(to) {
		return false
	}
	i := slices.Index(g.names, from)
	g.names[i] = to
	g.members[to] = g.members[from]
	delete(g.members, from)
	return true
}

// DeleteGroup removes a group and returns its members so the caller can
// remove the instances as well.
func (g *Groups) DeleteGroup(name string) []uuid.UUID {
	ids, ok := g.members[name]
	if !ok {
		return nil
	}
	delete(g.members, name)
	if i := slices.Index(g.names, name); i >= 0 {
		g.names = slices.Delete(g.names, i, i+1)
	}
	return ids
}

// MoveToGroup moves id into group at index, removing it from any group it
// was in. An empty group name leaves the instance ungrouped. An index out of
// range appends. Moving to a missing group is a no-op.
func (g *Groups) MoveToGroup(group string, id uuid.UUID, index int) bool {
	if group != "" && !g.HasGroup(group) {
		return false
	}
	g.removeMember(id)
	if group == "" {
		return true
	}
	ids := g.members[group]
	if index < 0 || index > len(ids) {
		index = len(ids)
	}
	g.members[group] = slices.Insert(ids, index, id)
	return true
}

func (g *Groups) removeMember(id uuid.UUID) {
	for name, ids := range g.members {
		if i := slices.Index(ids, id); i >= 0 {
			g.members[name] = slices.Delete(ids, i, i+1)
			return
		}
	}
}

// GroupOf returns the group holding id.
func (g *Groups) GroupOf(id uuid.UUID) (string, bool) {
	for _, name := range g.names {
		if slices.Contains(g.members[name], id) {
			return name, true
		}
	}
	return "", false
}

// BelongsToAnyGroup reports whether id is in some group.
func (g *Groups) BelongsToAnyGroup(id uuid.UUID) bool {
	_, ok := g.GroupOf(id)
	return ok
}

// Ungrouped filters ids down to those not in any group, keeping order.
func (g *Groups) Ungrouped(ids []uuid.UUID) []uuid.UUID {
	var grouped set.Set[uuid.UUID]
	for _, members := range g.members {
		for _, id := range members {
			grouped.Add(id)
		}
	}
	var out []uuid.UUID
	for _, id := range ids {
		if !grouped.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// MarshalYAML encodes the groups in order.
func (g *Groups) MarshalYAML() (any, error) {
	f := groupsFile{}
	for _, name := range g.names {
		f.Groups = append(f.Groups, groupEntry{Name: name, Members: g.members[name]})
	}
	return f, nil
}

// UnmarshalYAML decodes groups, dropping duplicate names and keeping the
// first group an instance appears in.
func (g *Groups) UnmarshalYAML(value *yaml.Node) error {
	var f groupsFile
	if err := value.Decode(&f); err != nil {
		return err
	}
	*g = Groups{members: make(map[string][]uuid.UUID)}
	var seen set.Set[uuid.UUID]
	for _, e := range f.Groups {
		if e.Name == "" || g.HasGroup(e.Name) {
			continue
		}
		g.AddGroup(e.Name)
		for _, id := range e.Members {
			if seen.Contains(id) {
				continue
			}
			seen.Add(id)
			g.members[e.Name] = append(g.members[e.Name], id)
		}
	}
	return nil
}

// LoadGroups reads groups from a YAML file.
func LoadGroups(path string) (*Groups, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sapling: load groups %s: %w", path, err)
	}
	g := NewGroups()
	if err := yaml.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("sapling: unmarshal groups %s: %w", path, err)
	}
	return g, nil
}

// Save writes the groups to path as YAML.
func (g *Groups) Save(path string) error {
	data, err := yaml.Marshal(g)
	if err != nil {
		return fmt.Errorf("sapling: marshal groups: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("sapling: save groups %s: %w", path, err)
	}
	return nil
}
