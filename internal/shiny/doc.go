// Package shiny turns the images of a species sprite page into labeled
// shiny-sprite records. Labeling is chosen per species: most species use
// the image title, a few multi-form species are disambiguated from the
// sprite URL, and Type: Null keeps a single record.
package shiny
