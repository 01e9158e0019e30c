// Package web exposes a catalog over HTTP: index entries as JSON, and record
// payloads either raw or embedded in JSON as data URLs.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/vincent-petithory/dataurl"

	"github.com/cgtools/go-crossgate/catalog"
	"github.com/cgtools/go-crossgate/graphic"
	"github.com/cgtools/go-crossgate/graphicinfo"
)

type Handler struct {
	cat *catalog.Catalog
}

// NewHandler constructs web handler for the passed catalog.
func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{cat: cat}
}

// graphicInfoJSON is the JSON shape of an index entry.
type graphicInfoJSON struct {
	ID        uint32  `json:"id"`
	Address   uint32  `json:"address"`
	Length    uint32  `json:"length"`
	OffsetX   int32   `json:"offset_x"`
	OffsetY   int32   `json:"offset_y"`
	Width     uint32  `json:"width"`
	Height    uint32  `json:"height"`
	TileEast  int8    `json:"tile_east"`
	TileSouth int8    `json:"tile_south"`
	Access    int8    `json:"access"`
	Reserved  [5]int8 `json:"reserved"`
	MapID     uint32  `json:"map_id,omitempty"`
}

func toGraphicInfoJSON(gi graphicinfo.GraphicInfo) graphicInfoJSON {
	return graphicInfoJSON{
		ID:        gi.ID,
		Address:   gi.Address,
		Length:    gi.Length,
		OffsetX:   gi.OffsetX,
		OffsetY:   gi.OffsetY,
		Width:     gi.Width,
		Height:    gi.Height,
		TileEast:  gi.TileEast,
		TileSouth: gi.TileSouth,
		Access:    gi.Access,
		Reserved:  gi.Reserved,
		MapID:     gi.MapID,
	}
}

// graphicJSON is the JSON shape of a decoded record, minus the payload
// unless it was asked for inline.
type graphicJSON struct {
	ID         uint32   `json:"id"`
	Version    int8     `json:"version"`
	Width      uint32   `json:"width"`
	Height     uint32   `json:"height"`
	Length     uint32   `json:"length"`
	Digest     string   `json:"digest"`
	Mismatches []string `json:"mismatches,omitempty"`
	DataURL    string   `json:"data_url,omitempty"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Errorf("web: encoding json response: %v", err)
	}
}

func idVar(w http.ResponseWriter, r *http.Request, name string) (uint32, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		http.Error(w, name+" not a number", http.StatusBadRequest)
		return 0, false
	}
	return uint32(id), true
}

func (h *Handler) graphicInfoListHandler(w http.ResponseWriter, r *http.Request) {
	entries := h.cat.Entries()
	out := make([]graphicInfoJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, toGraphicInfoJSON(e))
	}
	writeJSON(w, out)
}

func (h *Handler) graphicInfoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(w, r, "id")
	if !ok {
		return
	}
	info, ok := h.cat.ByID(id)
	if !ok {
		http.Error(w, fmt.Sprintf("no graphic %d", id), http.StatusNotFound)
		return
	}
	writeJSON(w, toGraphicInfoJSON(info))
}

func (h *Handler) mapHandler(w http.ResponseWriter, r *http.Request) {
	mapID, ok := idVar(w, r, "mapid")
	if !ok {
		return
	}
	out := []graphicInfoJSON{}
	for _, e := range h.cat.ByMapID(mapID) {
		out = append(out, toGraphicInfoJSON(e))
	}
	writeJSON(w, out)
}

// load resolves the id route variable and decodes its record, writing an
// error response on failure.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (graphicinfo.GraphicInfo, *graphic.Graphic, bool) {
	id, ok := idVar(w, r, "id")
	if !ok {
		return graphicinfo.GraphicInfo{}, nil, false
	}
	info, ok := h.cat.ByID(id)
	if !ok {
		http.Error(w, fmt.Sprintf("no graphic %d", id), http.StatusNotFound)
		return graphicinfo.GraphicInfo{}, nil, false
	}
	g, err := h.cat.GraphicFor(info)
	if err != nil {
		glog.Errorf("web: decoding graphic %d: %v", id, err)
		status := http.StatusInternalServerError
		if errors.Is(err, graphic.ErrInvalidIdentifier) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return graphicinfo.GraphicInfo{}, nil, false
	}
	return info, g, true
}

func (h *Handler) graphicHandler(w http.ResponseWriter, r *http.Request) {
	info, g, ok := h.load(w, r)
	if !ok {
		return
	}
	out := graphicJSON{
		ID:      info.ID,
		Version: g.Version,
		Width:   g.Width,
		Height:  g.Height,
		Length:  g.Length,
		Digest:  catalog.Digest(g).String(),
	}
	for _, m := range catalog.Verify(info, g) {
		out.Mismatches = append(out.Mismatches, m.String())
	}
	if r.URL.Query().Get("inline") == "1" {
		out.DataURL = dataurl.New(g.Bytes(), "application/octet-stream").String()
	}
	writeJSON(w, out)
}

func (h *Handler) rawHandler(w http.ResponseWriter, r *http.Request) {
	_, g, ok := h.load(w, r)
	if !ok {
		return
	}
	etag := fmt.Sprintf(`"%s"`, catalog.Digest(g).Encoded())
	w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(g.Bytes())
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/graphicinfo", h.graphicInfoListHandler).Methods(http.MethodGet)
	r.HandleFunc("/graphicinfo/{id:[0-9]+}", h.graphicInfoHandler).Methods(http.MethodGet)
	r.HandleFunc("/graphic/{id:[0-9]+}", h.graphicHandler).Methods(http.MethodGet)
	r.HandleFunc("/graphic/{id:[0-9]+}/raw", h.rawHandler).Methods(http.MethodGet)
	r.HandleFunc("/map/{mapid:[0-9]+}", h.mapHandler).Methods(http.MethodGet)
}
