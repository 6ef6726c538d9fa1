package shiny

import (
	"strings"

	"github.com/brogergvhs/shinydex/internal/providers"
)

const typeNullName = "Type: Null"

// Labeler turns a qualifying image into a record. ok reports whether a
// record was produced; stop ends the image loop for the whole species.
type Labeler interface {
	Label(species string, img providers.Image) (rec Record, ok, stop bool)
	Kind() string
}

// LabelerFor picks the labeling strategy once per species.
func LabelerFor(species string) Labeler {
	switch species {
	case "oricorio":
		return keyedForms{forms: oricorioForms}
	case "lycanroc":
		return keyedForms{forms: lycanrocForms}
	case "minior":
		return tableVariant{table: MiniorColors, suffix: "Core"}
	case "silvally":
		return tableVariant{table: SilvallyTypes, suffix: "Type"}
	case "typenull":
		return singleForm{name: typeNullName}
	default:
		return titled{}
	}
}

type titled struct{}

func (titled) Kind() string { return "title" }

func (titled) Label(species string, img providers.Image) (Record, bool, bool) {
	return Record{Species: species, Label: img.Title, URL: img.Src}, true, false
}

type singleForm struct {
	name string
}

func (singleForm) Kind() string { return "single form" }

func (f singleForm) Label(species string, img providers.Image) (Record, bool, bool) {
	return Record{Species: species, Name: f.name, URL: img.Src}, true, true
}

type keyedForms struct {
	forms []form
}

func (keyedForms) Kind() string { return "keyed forms" }

func (k keyedForms) Label(species string, img providers.Image) (Record, bool, bool) {
	for _, f := range k.forms {
		for _, key := range f.keys {
			if strings.Contains(img.Src, key) {
				return Record{Species: species, Label: f.label, URL: img.Src}, true, false
			}
		}
	}

	return Record{}, false, false
}

type tableVariant struct {
	table  []Variant
	suffix string
}

func (t tableVariant) Kind() string { return "variant table (" + strings.ToLower(t.suffix) + ")" }

func (t tableVariant) Label(species string, img providers.Image) (Record, bool, bool) {
	for _, v := range t.table {
		if strings.Contains(img.Src, v.Key) {
			return Record{Species: species, Label: v.Label + " " + t.suffix, URL: img.Src}, true, false
		}
	}

	return Record{}, false, false
}
