package main

import (
	"fmt"
	"net/http"

	mw "clinicaacosta.org/clinic-web/internal/middleware"
)

type galleryPhoto struct {
	Src     string
	Caption string
}

type galleryView struct {
	Title  string
	Photos []galleryPhoto
	Rail   railView
}

func buildGalleryView(lang string, active int) galleryView {
	captions := bundle.TStrings(lang, "gallery.captions")
	v := galleryView{Title: bundle.T(lang, "gallery.title")}
	for i, c := range captions {
		v.Photos = append(v.Photos, galleryPhoto{
			Src:     fmt.Sprintf("/assets/img/gallery-%d.jpg", i+1),
			Caption: c,
		})
	}
	v.Rail = buildRailView("/gallery/strip", lang, len(captions), galleryCloneDepth, active)
	return v
}

// GalleryHandler renders the office photo tour.
func GalleryHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := buildGalleryView(lang, 0)

	vm := newPageData(r, view.Title)
	vm.Gallery = view
	setSEO(&vm, r, view.Title)
	renderPage(w, r, "gallery", vm)
}

// GalleryStripFrag advances the photo strip one slide and re-renders it.
func GalleryStripFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	n := len(bundle.TStrings(lang, "gallery.captions"))
	if n == 0 {
		http.NotFound(w, r)
		return
	}
	active, dir := railParams(r, n)
	next := stepIndex(n, galleryCloneDepth, active, dir)
	renderTemplate(w, r, "frag_gallery_strip", buildGalleryView(lang, next))
}
