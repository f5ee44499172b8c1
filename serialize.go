package kumiai

import (
	"reflect"
	"sort"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
)

type jsonEntity struct {
	ID         uint32                     `json:"id"`
	Name       string                     `json:"name,omitempty"`
	Tags       []string                   `json:"tags,omitempty"`
	Components map[string]json.RawMessage `json:"components,omitempty"`
}

type jsonWorld struct {
	Results []jsonEntity `json:"results"`
}

// ToJSON encodes every placed entity with its name, tags and component
// values keyed by full type name. Entities are ordered by ID.
func (w *World) ToJSON() ([]byte, error) {
	var out jsonWorld
	out.Results = make([]jsonEntity, 0, w.Count())
	for _, t := range w.tables.list {
		for _, c := range t.chunks {
			for row := 0; row < c.size; row++ {
				e := c.entities[row]
				je, err := w.encodeEntity(t, e)
				if err != nil {
					return nil, err
				}
				out.Results = append(out.Results, je)
			}
		}
	}
	sort.Slice(out.Results, func(i, j int) bool {
		return out.Results[i].ID < out.Results[j].ID
	})
	bz, err := json.Marshal(out)
	if err != nil {
		return nil, eris.Wrap(err, "failed to encode world")
	}
	return bz, nil
}

func (w *World) encodeEntity(t *Table, e Entity) (jsonEntity, error) {
	je := jsonEntity{ID: e.ID, Name: w.Name(e)}
	for _, id := range t.ids {
		info := t.infos[id]
		if info.IsTag {
			je.Tags = append(je.Tags, info.FullName)
			continue
		}
		p := w.componentPtr(e, id)
		if p == nil {
			continue
		}
		bz, err := json.Marshal(reflect.NewAt(info.Type, p).Interface())
		if err != nil {
			return je, eris.Wrapf(err, "failed to encode %s of entity %d", info.FullName, e.ID)
		}
		if je.Components == nil {
			je.Components = make(map[string]json.RawMessage, len(t.ids))
		}
		je.Components[info.FullName] = bz
	}
	return je, nil
}

// FromJSON creates the entities described by data, as produced by ToJSON.
// Component and tag names must already be registered. A named entity that
// already exists is updated in place. Entity IDs are not preserved.
func (w *World) FromJSON(data []byte) error {
	var in jsonWorld
	if err := json.Unmarshal(data, &in); err != nil {
		return eris.Wrap(err, "failed to decode world")
	}
	for _, je := range in.Results {
		if err := w.decodeEntity(je); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) decodeEntity(je jsonEntity) error {
	e, ok := Entity{}, false
	if je.Name != "" {
		e, ok = w.Lookup(je.Name)
	}
	if !ok {
		e = w.CreateEntity()
		if je.Name != "" {
			w.SetName(e, je.Name)
		}
	}
	for _, name := range je.Tags {
		id, err := w.ComponentIDByName(name)
		if err != nil {
			return eris.Wrapf(err, "entity %d", je.ID)
		}
		w.Add(e, id)
	}
	names := make([]string, 0, len(je.Components))
	for name := range je.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		id, err := w.ComponentIDByName(name)
		if err != nil {
			return eris.Wrapf(err, "entity %d", je.ID)
		}
		info := w.components.info(id)
		v := reflect.New(info.Type)
		if err := json.Unmarshal(je.Components[name], v.Interface()); err != nil {
			return eris.Wrapf(err, "failed to decode %s of entity %d", name, je.ID)
		}
		w.set(e, id, v.UnsafePointer())
	}
	return nil
}

// ComponentSchema returns the JSON schema of component id's type.
func (w *World) ComponentSchema(id ComponentID) ([]byte, error) {
	info := w.components.info(id)
	schema := jsonschema.Reflect(reflect.New(info.Type).Elem().Interface())
	bz, err := schema.MarshalJSON()
	if err != nil {
		return nil, eris.Wrapf(err, "component %s must be json serializable", info.FullName)
	}
	return bz, nil
}
