package prep

// crop classes
const (
	Unclassified = iota
	Corn
	Wheat
	Soybeans
	Cotton
	Rice // 5
	Fallow
)

// CropName maps a raster crop class to its water demand table key.
func CropName(id int) string {
	switch id {
	case Corn:
		return "corn"
	case Wheat:
		return "wheat"
	case Soybeans:
		return "soybeans"
	case Cotton:
		return "cotton"
	case Rice:
		return "rice"
	case Fallow:
		return "fallow"
	default:
		return "unclassified"
	}
}
