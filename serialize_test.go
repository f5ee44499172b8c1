package kumiai

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestWorldJSON$ . -count 1
func TestWorldJSON(t *testing.T) {
	src := newTestWorld(t)
	hero := src.CreateEntity()
	src.SetName(hero, "hero")
	SetComponent(src, hero, Position{X: 1, Y: 2})
	SetComponent(src, hero, Label{Text: "Ayla"})
	AddTag[Frozen](src, hero)
	rock := src.CreateEntity()
	SetComponent(src, rock, Health{Current: 3, Max: 5})

	bz, err := src.ToJSON()
	require.NoError(t, err)

	var doc struct {
		Results []struct {
			ID         uint32                     `json:"id"`
			Name       string                     `json:"name"`
			Tags       []string                   `json:"tags"`
			Components map[string]json.RawMessage `json:"components"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(bz, &doc))
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "hero", doc.Results[0].Name)
	assert.Equal(t, []string{TypeOf[Frozen]().FullName}, doc.Results[0].Tags)
	assert.JSONEq(t, `{"X":1,"Y":2}`, string(doc.Results[0].Components[TypeOf[Position]().FullName]))

	dst := newTestWorld(t)
	RegisterComponent[Position](dst)
	RegisterComponent[Label](dst)
	RegisterComponent[Health](dst)
	RegisterComponent[Frozen](dst)
	require.NoError(t, dst.FromJSON(bz))
	assert.Equal(t, 2, dst.Count())

	e, ok := dst.Lookup("hero")
	require.True(t, ok)
	assert.Equal(t, &Position{X: 1, Y: 2}, GetComponent[Position](dst, e))
	assert.Equal(t, "Ayla", GetComponent[Label](dst, e).Text)
	assert.True(t, HasComponent[Frozen](dst, e))

	q := NewQueryBuilder1[Health](dst).Build()
	assert.Equal(t, 1, q.Count())
	assert.Equal(t, &Health{Current: 3, Max: 5}, GetComponent[Health](dst, q.First()))
}

// go test -run ^TestFromJSONUpdatesNamedEntity$ . -count 1
func TestFromJSONUpdatesNamedEntity(t *testing.T) {
	w := newTestWorld(t)
	RegisterComponent[Position](w)
	e := w.CreateEntity()
	w.SetName(e, "camera")

	data := `{"results":[{"id":9,"name":"camera","components":{"Position":{"X":4,"Y":5}}}]}`
	require.NoError(t, w.FromJSON([]byte(data)))
	assert.Equal(t, 1, w.Count())
	assert.Equal(t, &Position{X: 4, Y: 5}, GetComponent[Position](w, e))
}

// go test -run ^TestFromJSONUnknownComponent$ . -count 1
func TestFromJSONUnknownComponent(t *testing.T) {
	w := newTestWorld(t)
	err := w.FromJSON([]byte(`{"results":[{"id":1,"components":{"Nope":{}}}]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownComponent))

	err = w.FromJSON([]byte(`{"results":`))
	assert.Error(t, err)
}

// go test -run ^TestComponentSchema$ . -count 1
func TestComponentSchema(t *testing.T) {
	w := newTestWorld(t)
	id := RegisterComponent[Health](w)
	bz, err := w.ComponentSchema(id)
	require.NoError(t, err)
	assert.Contains(t, string(bz), "Current")
	assert.Contains(t, string(bz), "Max")
}

// go test -run ^TestQueryJSON$ . -count 1
func TestQueryJSON(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 3)
	w.SetName(ents[1], "runner")
	q := NewQueryBuilder1[Position](w).Build()

	bz, err := q.Page(1, 1).ToJSON()
	require.NoError(t, err)
	var out struct {
		Results []struct {
			ID         uint32                     `json:"id"`
			Name       string                     `json:"name"`
			Components map[string]json.RawMessage `json:"components"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(bz, &out))
	require.Len(t, out.Results, 1)
	got := out.Results[0]
	assert.Equal(t, ents[1].ID, got.ID)
	assert.Equal(t, "runner", got.Name)
	assert.JSONEq(t, `{"X":1,"Y":0}`, string(got.Components[TypeOf[Position]().FullName]))
	assert.Contains(t, got.Components, TypeOf[Velocity]().FullName)

	bz, err = q.ToJSON()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bz, &out))
	assert.Len(t, out.Results, 3)
}
