package dashboard

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/drone_analytics_dashboard/internal/models"
)

// Marker - точка нарушения на карте
type Marker struct {
	ViolationID string
	Type        string
	DroneID     string
	Timestamp   string
	Latitude    float64
	Longitude   float64
	ImageURL    string
}

// MarkerRenderer выводит маркеры нарушений; реализация карты заменяема
type MarkerRenderer interface {
	Render(w io.Writer, markers []Marker) error
}

func Markers(violations []models.Violation) []Marker {
	markers := make([]Marker, 0, len(violations))
	for _, v := range violations {
		markers = append(markers, Marker{
			ViolationID: v.ViolationID,
			Type:        v.Type,
			DroneID:     v.DroneID,
			Timestamp:   v.Timestamp,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			ImageURL:    v.ImageURL,
		})
	}
	return markers
}

// TextMarkerRenderer печатает маркеры списком
type TextMarkerRenderer struct{}

func (TextMarkerRenderer) Render(w io.Writer, markers []Marker) error {
	if len(markers) == 0 {
		_, err := fmt.Fprintln(w, "No violations to display on map")
		return err
	}
	for _, m := range markers {
		_, err := fmt.Fprintf(w, "%-10s %10.6f %11.6f  %s (%s) %s\n",
			m.ViolationID, m.Latitude, m.Longitude, m.Type, m.DroneID, m.Timestamp)
		if err != nil {
			return err
		}
	}
	return nil
}

// GeoJSONMarkerRenderer пишет маркеры как FeatureCollection
type GeoJSONMarkerRenderer struct {
	Indent string
}

func (r GeoJSONMarkerRenderer) Render(w io.Writer, markers []Marker) error {
	fc := geojson.NewFeatureCollection()
	for _, m := range markers {
		f := geojson.NewFeature(orb.Point{m.Longitude, m.Latitude})
		f.Properties["id"] = m.ViolationID
		f.Properties["type"] = m.Type
		f.Properties["drone_id"] = m.DroneID
		f.Properties["timestamp"] = m.Timestamp
		f.Properties["image_url"] = m.ImageURL
		fc.Append(f)
	}

	enc := json.NewEncoder(w)
	if r.Indent != "" {
		enc.SetIndent("", r.Indent)
	}
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("failed to encode geojson: %w", err)
	}
	return nil
}
