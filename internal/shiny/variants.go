package shiny

// Variant pairs a URL substring with the label it stands for. Tables are
// slices, not maps: the first key found in a URL wins, so order matters.
type Variant struct {
	Key   string
	Label string
}

var SilvallyTypes = []Variant{
	{"bug", "Bug"}, {"dark", "Dark"}, {"dragon", "Dragon"}, {"electric", "Electric"},
	{"fairy", "Fairy"}, {"fighting", "Fighting"}, {"fire", "Fire"}, {"flying", "Flying"},
	{"ghost", "Ghost"}, {"grass", "Grass"}, {"ground", "Ground"}, {"ice", "Ice"},
	{"normal", "Normal"}, {"poison", "Poison"}, {"psychic", "Psychic"}, {"rock", "Rock"},
	{"steel", "Steel"}, {"water", "Water"},
}

var MiniorColors = []Variant{
	{"red", "Red"}, {"orange", "Orange"}, {"yellow", "Yellow"},
	{"green", "Green"}, {"blue", "Blue"}, {"indigo", "Indigo"}, {"violet", "Violet"},
}

// form is one entry of a keyed-form table; any of keys selects label.
type form struct {
	keys  []string
	label string
}

var oricorioForms = []form{
	{[]string{"baile"}, "Baile Style"},
	// the site has used both spellings
	{[]string{"pom-pom", "pompom"}, "Pom-Pom Style"},
	{[]string{"pau"}, "Pa'u Style"},
	{[]string{"sensu"}, "Sensu Style"},
}

var lycanrocForms = []form{
	{[]string{"midday"}, "Midday Form"},
	{[]string{"midnight"}, "Midnight Form"},
	{[]string{"dusk"}, "Dusk Form"},
}
