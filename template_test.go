package docsnip_test

import (
	"testing"

	"github.com/fwojciec/docsnip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTemplateSets(t *testing.T) {
	t.Parallel()

	cfg := docsnip.DefaultConfig().Templates

	t.Run("builds one import and one usage template per record", func(t *testing.T) {
		t.Parallel()

		records := []*docsnip.Record{
			{Name: "button", Import: `import { Button } from "@/components/ui/button"`, Usage: "<Button>Click</Button>"},
			{Name: "avatar", Import: `import { Avatar } from "x"`, Usage: "<Avatar />"},
		}

		imports, usage := docsnip.BuildTemplateSets(records, cfg)

		assert.Equal(t, "shadcn/ui-imports", imports.Group)
		assert.Equal(t, "shadcn-ui-import-snippets.xml", imports.Filename)
		assert.Equal(t, "shadcn/ui-usage", usage.Group)
		assert.Equal(t, "shadcn-ui-usage-snippets.xml", usage.Filename)

		require.Len(t, imports.Templates, 2)
		require.Len(t, usage.Templates, 2)

		assert.Equal(t, "cni-avatar", imports.Templates[0].Name)
		assert.Equal(t, `import { Avatar } from "x"`, imports.Templates[0].Value)
		assert.Equal(t, "https://ui.shadcn.com/docs/components/avatar", imports.Templates[0].Description)
		assert.Equal(t, docsnip.DefaultTemplateOptions, imports.Templates[0].Options)

		assert.Equal(t, "cnu-button", usage.Templates[1].Name)
		assert.Equal(t, "<Button>Click</Button>", usage.Templates[1].Value)
	})

	t.Run("does not reorder caller's records", func(t *testing.T) {
		t.Parallel()

		records := []*docsnip.Record{{Name: "b"}, {Name: "a"}}

		docsnip.BuildTemplateSets(records, cfg)

		assert.Equal(t, "b", records[0].Name)
	})

	t.Run("returns empty sets without records", func(t *testing.T) {
		t.Parallel()

		imports, usage := docsnip.BuildTemplateSets(nil, cfg)

		assert.Empty(t, imports.Templates)
		assert.Empty(t, usage.Templates)
	})
}
