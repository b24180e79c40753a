package weather

import (
	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/model/external"
)

func toLocation(dto external.LocationDTO) entity.Location {
	return entity.Location{
		Name:      dto.Name,
		Region:    dto.Region,
		Country:   dto.Country,
		TimeZone:  dto.TzID,
		LocalTime: dto.LocalTime,
	}
}

func toCondition(dto external.ConditionDTO) entity.Condition {
	icon := dto.Icon
	// the provider sends protocol-relative URLs
	if len(icon) > 2 && icon[:2] == "//" {
		icon = "https:" + icon
	}
	return entity.Condition{Text: dto.Text, Icon: icon, Code: dto.Code}
}

func toCurrentConditions(resp *external.CurrentResponse) *entity.CurrentConditions {
	c := resp.Current
	return &entity.CurrentConditions{
		Location:    toLocation(resp.Location),
		LastUpdated: c.LastUpdated,
		TempC:       c.TempC,
		FeelsLikeC:  c.FeelsLikeC,
		Humidity:    c.Humidity,
		WindKph:     c.WindKph,
		WindDegree:  c.WindDegree,
		WindDir:     c.WindDir,
		PressureMb:  c.PressureMb,
		UV:          c.UV,
		Cloud:       c.Cloud,
		IsDay:       c.IsDay == 1,
		Condition:   toCondition(c.Condition),
	}
}

func toWeeklyForecast(resp *external.ForecastResponse) *entity.WeeklyForecast {
	days := make([]entity.DailyForecast, 0, len(resp.Forecast.ForecastDay))
	for _, fd := range resp.Forecast.ForecastDay {
		days = append(days, entity.DailyForecast{
			Date:         fd.Date,
			MaxTempC:     fd.Day.MaxTempC,
			MinTempC:     fd.Day.MinTempC,
			AvgHumidity:  fd.Day.AvgHumidity,
			ChanceOfRain: fd.Day.DailyChanceOfRain,
			Condition:    toCondition(fd.Day.Condition),
		})
	}
	return &entity.WeeklyForecast{Location: toLocation(resp.Location), Days: days}
}

// toHourlyForecast keeps the hours of the first forecast day only
func toHourlyForecast(resp *external.ForecastResponse) *entity.HourlyForecast {
	out := &entity.HourlyForecast{Location: toLocation(resp.Location), Hours: []entity.HourlyEntry{}}
	if len(resp.Forecast.ForecastDay) == 0 {
		return out
	}
	for _, h := range resp.Forecast.ForecastDay[0].Hour {
		out.Hours = append(out.Hours, entity.HourlyEntry{
			Time:         h.Time,
			TempC:        h.TempC,
			ChanceOfRain: h.ChanceOfRain,
			WindKph:      h.WindKph,
			IsDay:        h.IsDay == 1,
			Condition:    toCondition(h.Condition),
		})
	}
	return out
}
