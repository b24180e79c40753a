package condition

// byCode is the WeatherAPI.com condition table (https://www.weatherapi.com/docs/weather_conditions.json).
var byCode = map[int]Category{
	1000: Clear,
	1003: PartlyCloudy,
	1006: Cloudy,
	1009: PartlyCloudy, // overcast
	1030: Fog,
	1063: Rain,
	1066: Snow,
	1069: Snow,
	1072: Rain,
	1087: Thunder,
	1114: Snow,
	1117: Snow,
	1135: Fog,
	1147: Fog,
	1150: Rain,
	1153: Rain,
	1168: Rain,
	1171: Rain,
	1180: Rain,
	1183: Rain,
	1186: Rain,
	1189: Rain,
	1192: Rain,
	1195: Rain,
	1198: Rain,
	1201: Rain,
	1204: Snow,
	1207: Snow,
	1210: Snow,
	1213: Snow,
	1216: Snow,
	1219: Snow,
	1222: Snow,
	1225: Snow,
	1237: Snow,
	1240: Rain,
	1243: Rain,
	1246: Rain,
	1249: Snow,
	1252: Snow,
	1255: Snow,
	1258: Snow,
	1261: Snow,
	1264: Snow,
	1273: Thunder,
	1276: Thunder,
	1279: Thunder,
	1282: Thunder,
}
