// Package pokemondb implements a providers.Source for the sprite pages of
// pokemondb.net. It fetches one page per species and returns every <img>
// on it in document order, leaving all filtering to the caller.
package pokemondb
