package shiny

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	testCases := []struct {
		line string
		want Record
	}{
		{
			line: "rowlet: https://img.pokemondb.net/sprites/home/shiny/rowlet.png",
			want: Record{Species: "rowlet", Name: "rowlet", URL: "https://img.pokemondb.net/sprites/home/shiny/rowlet.png"},
		},
		{
			line: "oricorio (Pa'u Style): https://img.pokemondb.net/sprites/home/shiny/oricorio-pau.png",
			want: Record{Species: "oricorio", Name: "oricorio", Label: "Pa'u Style", URL: "https://img.pokemondb.net/sprites/home/shiny/oricorio-pau.png"},
		},
		{
			line: "Type: Null: https://img.pokemondb.net/sprites/home/shiny/type-null.png",
			want: Record{Species: "typenull", Name: "Type: Null", URL: "https://img.pokemondb.net/sprites/home/shiny/type-null.png"},
		},
		{
			line: "  necrozma (Dusk Mane Necrozma): https://img.pokemondb.net/a.png  ",
			want: Record{Species: "necrozma", Name: "necrozma", Label: "Dusk Mane Necrozma", URL: "https://img.pokemondb.net/a.png"},
		},
	}

	for _, tc := range testCases {
		got, err := ParseRecord(tc.line)
		require.NoError(t, err, tc.line)
		require.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"", "no separator", ": https://x", "rowlet: "} {
		_, err := ParseRecord(bad)
		require.Error(t, err, bad)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	recs := []Record{
		{Species: "minior", Label: "Red Core", URL: "https://img.pokemondb.net/x/minior-red.png"},
		{Species: "typenull", Name: typeNullName, URL: "https://img.pokemondb.net/x/type-null.png"},
		{Species: "komala", URL: "https://img.pokemondb.net/x/komala.png"},
	}

	for _, r := range recs {
		got, err := ParseRecord(r.String())
		require.NoError(t, err)
		require.Equal(t, r.String(), got.String())
		require.Equal(t, r.Species, got.Species)
	}
}

func TestFormKey(t *testing.T) {
	testCases := []struct {
		species, label, want string
		ok                   bool
	}{
		{"rowlet", "", "", true},
		{"oricorio", "Pom-Pom Style", "pompom", true},
		{"oricorio", "Pa'u Style", "pau", true},
		{"oricorio", "Baile Style", "baile", true},
		{"oricorio", "Flamenco", "", false},
		{"lycanroc", "Midnight Form", "midnight", true},
		{"minior", "Violet Core", "violet", true},
		{"silvally", "Psychic Type", "psychic", true},
		{"necrozma", "Dusk Mane", "dusk-mane", true},
		{"magearna", "Original Color: Magearna's", "original-color-magearnas", true},
	}

	for _, tc := range testCases {
		got, ok := FormKey(tc.species, tc.label)
		require.Equal(t, tc.ok, ok, tc.label)
		require.Equal(t, tc.want, got, tc.label)
	}
}

func TestBuildMapping(t *testing.T) {
	recs := []Record{
		{Species: "rowlet", Name: "rowlet", URL: "https://img.pokemondb.net/sprites/home/shiny/rowlet.png"},
		{Species: "rowlet", Name: "rowlet", Label: "Sun/Moon", URL: "https://img.pokemondb.net/sprites/sun-moon/shiny/rowlet.png"},
		{Species: "minior", Name: "minior", Label: "Red Core", URL: "https://img.pokemondb.net/sprites/home/shiny/minior-red.png"},
		{Species: "typenull", Name: typeNullName, URL: "https://img.pokemondb.net/sprites/home/shiny/type-null.png"},
		{Species: "tapu-koko", Name: "tapu-koko", URL: "https://img.pokemondb.net/sprites/home/shiny/tapu-koko.png"},
		{Species: "zeraora", Name: "zeraora", URL: "https://img.pokemondb.net/sprites/home/shiny/zeraora.png"},
	}

	m := BuildMapping(recs, nil, map[string]string{"1": "bulbasaur.png"})
	want := map[string]string{
		"1":          "bulbasaur.png",
		"rowlet":     "https://img.pokemondb.net/sprites/home/shiny/rowlet.png",
		"minior-red": "https://img.pokemondb.net/sprites/home/shiny/minior-red.png",
		"typenull":   "https://img.pokemondb.net/sprites/home/shiny/type-null.png",
		"tapu-koko":  "https://img.pokemondb.net/sprites/home/shiny/tapu-koko.png",
		"zeraora":    "https://img.pokemondb.net/sprites/home/shiny/zeraora.png",
	}
	if diff := cmp.Diff(want, m.Entries); diff != "" {
		t.Errorf("unexpected mapping (-want +got):\n%s", diff)
	}
	require.Equal(t, 5, m.Processed)
	require.Empty(t, m.Unknown)

	ids := map[string]int{"rowlet": 722, "minior": 774, "type: null": 772, "tapu koko": 785}
	m = BuildMapping(recs, ids, nil)
	want = map[string]string{
		"722":     "https://img.pokemondb.net/sprites/home/shiny/rowlet.png",
		"774-red": "https://img.pokemondb.net/sprites/home/shiny/minior-red.png",
		"772":     "https://img.pokemondb.net/sprites/home/shiny/type-null.png",
		"785":     "https://img.pokemondb.net/sprites/home/shiny/tapu-koko.png",
	}
	if diff := cmp.Diff(want, m.Entries); diff != "" {
		t.Errorf("unexpected mapping (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{"zeraora"}, m.Unknown)
}

func TestLoadPokedex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokedex.json")
	data := `[{"id":722,"name":{"english":"Rowlet"}},{"id":772,"name":{"english":"Type: Null"}}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	ids, err := LoadPokedex(path)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"rowlet": 722, "type: null": 772}, ids)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = LoadPokedex(path)
	require.Error(t, err)
}

func TestLoadMapping(t *testing.T) {
	dir := t.TempDir()

	m, err := LoadMapping(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	require.Empty(t, m)

	path := filepath.Join(dir, "shiny-mapping.json")
	data := "{\n  // hand edited\n  \"722\": \"https://img.pokemondb.net/sprites/home/shiny/rowlet.png\",\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	m, err = LoadMapping(path)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"722": "https://img.pokemondb.net/sprites/home/shiny/rowlet.png"}, m)
}
