package tagpicker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/merchkit/ordertags/internal/tagpicker"
)

func TestPicker_Filter(t *testing.T) {
	t.Run("matches over available and selected", func(t *testing.T) {
		p := tagpicker.New([]string{"vip", "wholesale"}, []string{"urgent"}, nil, nil)

		assert.Equal(t, []string{"urgent", "wholesale"}, p.Filter("o"))
	})

	t.Run("empty query returns every candidate sorted", func(t *testing.T) {
		p := tagpicker.New([]string{"wholesale", "vip"}, []string{"urgent"}, nil, nil)

		assert.Equal(t, []string{"urgent", "vip", "wholesale"}, p.Filter(""))
	})

	t.Run("case insensitive", func(t *testing.T) {
		p := tagpicker.New([]string{"VIP", "wholesale"}, nil, nil, nil)

		assert.Equal(t, []string{"VIP"}, p.Filter("vi"))
	})

	t.Run("no match", func(t *testing.T) {
		p := tagpicker.New([]string{"vip"}, nil, nil, nil)

		assert.Empty(t, p.Filter("zzz"))
	})

	t.Run("deduplicates tags both available and selected", func(t *testing.T) {
		p := tagpicker.New([]string{"vip", "sale"}, []string{"vip"}, nil, nil)

		assert.Equal(t, []string{"sale", "vip"}, p.Filter(""))
	})
}

func TestPicker_SetQuery(t *testing.T) {
	t.Run("suggests first unselected prefix match", func(t *testing.T) {
		p := tagpicker.New([]string{"wholesale", "whole-order"}, nil, nil, nil)

		p.SetQuery("who")
		assert.Equal(t, "who", p.Query())
		assert.Equal(t, "whole-order", p.Suggestion())
	})

	t.Run("skips already selected tags", func(t *testing.T) {
		p := tagpicker.New([]string{"wholesale"}, []string{"wholesale"}, nil, nil)

		p.SetQuery("who")
		assert.Empty(t, p.Suggestion())
	})

	t.Run("empty query clears the suggestion", func(t *testing.T) {
		p := tagpicker.New([]string{"vip"}, nil, nil, nil)

		p.SetQuery("v")
		p.SetQuery("")
		assert.Empty(t, p.Suggestion())
	})
}

func TestPicker_Toggle(t *testing.T) {
	t.Run("adds then removes and notifies with full selection", func(t *testing.T) {
		var notified [][]string
		p := tagpicker.New([]string{"vip", "sale"}, []string{"sale"}, func(selected []string) {
			notified = append(notified, selected)
		}, nil)

		p.Toggle("vip")
		assert.Equal(t, []string{"sale", "vip"}, p.Selected())

		p.Toggle("vip")
		assert.Equal(t, []string{"sale"}, p.Selected())

		assert.Equal(t, [][]string{{"sale", "vip"}, {"sale"}}, notified)
	})

	t.Run("clears query and suggestion", func(t *testing.T) {
		p := tagpicker.New([]string{"vip"}, nil, nil, nil)

		p.SetQuery("vi")
		p.Toggle("vip")
		assert.Empty(t, p.Query())
		assert.Empty(t, p.Suggestion())
	})
}

func TestPicker_CreateAndSelect(t *testing.T) {
	t.Run("creates and selects a new tag", func(t *testing.T) {
		var created []string
		var selected []string
		p := tagpicker.New([]string{"vip"}, nil, func(s []string) {
			selected = s
		}, func(name string) {
			created = append(created, name)
		})

		p.SetQuery("  priority  ")
		p.CreateAndSelect()

		assert.Equal(t, []string{"priority"}, created)
		assert.Equal(t, []string{"priority"}, selected)
		assert.Contains(t, p.Filter(""), "priority")
	})

	t.Run("existing tag is not re-created", func(t *testing.T) {
		var created []string
		p := tagpicker.New([]string{"vip"}, nil, nil, func(name string) {
			created = append(created, name)
		})

		p.SetQuery("vip")
		p.CreateAndSelect()

		assert.Empty(t, created)
		assert.Empty(t, p.Query())
	})

	t.Run("blank query creates nothing", func(t *testing.T) {
		var created []string
		p := tagpicker.New(nil, nil, nil, func(name string) {
			created = append(created, name)
		})

		p.SetQuery("   ")
		p.CreateAndSelect()

		assert.Empty(t, created)
	})
}

func TestPicker_CanCreate(t *testing.T) {
	p := tagpicker.New([]string{"vip"}, []string{"urgent"}, nil, nil)

	assert.True(t, p.CanCreate("zzz"))
	assert.False(t, p.CanCreate("vip"))
	assert.False(t, p.CanCreate("urgent"))
	assert.False(t, p.CanCreate("   "))
}
