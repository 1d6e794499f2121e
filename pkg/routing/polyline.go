package routing

import "github.com/rotisserie/eris"

// DecodePolyline decodes an encoded polyline (precision 1e5) into points.
func DecodePolyline(encoded string) ([]Point, error) {
	var points []Point
	var lat, lon int
	for i := 0; i < len(encoded); {
		dLat, next, err := decodeValue(encoded, i)
		if err != nil {
			return nil, err
		}
		dLon, next, err := decodeValue(encoded, next)
		if err != nil {
			return nil, err
		}
		i = next
		lat += dLat
		lon += dLon
		points = append(points, Point{Lat: float64(lat) / 1e5, Lon: float64(lon) / 1e5})
	}
	return points, nil
}

func decodeValue(s string, i int) (int, int, error) {
	var result, shift int
	for {
		if i >= len(s) {
			return 0, i, eris.New("routing: truncated polyline")
		}
		b := int(s[i]) - 63
		i++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1), i, nil
	}
	return result >> 1, i, nil
}
