package gpx

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
	"rideathon.backend/internal/domain/entities"
)

// Parse flattens a GPX document into the ordered point sequence the track
// processor consumes. Multi-track and multi-segment files are concatenated
// in document order; the file format stays opaque to the scoring core.
func Parse(data []byte) ([]entities.TrackPoint, error) {
	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gpx document: %w", err)
	}

	var points []entities.TrackPoint
	for _, track := range doc.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				points = append(points, entities.TrackPoint{
					Latitude:  p.Latitude,
					Longitude: p.Longitude,
					Time:      p.Timestamp,
				})
			}
		}
	}
	return points, nil
}
