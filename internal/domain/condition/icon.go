package condition

// Icon classes of the weather-icons font.
const (
	IconDaySunny     = "wi-day-sunny"
	IconNightClear   = "wi-night-clear"
	IconCloudy       = "wi-cloudy"
	IconDayCloudy    = "wi-day-cloudy"
	IconRain         = "wi-rain"
	IconSnow         = "wi-snow"
	IconThunderstorm = "wi-thunderstorm"
	IconFog          = "wi-fog"
)

// IconFor returns the icon class of a category. Only clear and partly cloudy depend on isDay.
func IconFor(category Category, isDay bool) string {
	switch category {
	case Clear:
		if isDay {
			return IconDaySunny
		}
		return IconNightClear
	case PartlyCloudy:
		if isDay {
			return IconDayCloudy
		}
		return IconCloudy
	case Cloudy, Windy:
		return IconCloudy
	case Rain:
		return IconRain
	case Snow:
		return IconSnow
	case Thunder:
		return IconThunderstorm
	case Fog:
		return IconFog
	default:
		return IconDayCloudy
	}
}
