package report

import (
	"fmt"
	"time"
)

const BackupStaleAfterDays = 7

// Alert levels mirror the staleness severities plus an informational
// tier for reminders and the all-clear state.
const (
	AlertInfo     = "info"
	AlertWarning  = "warning"
	AlertCritical = "critical"
)

// Alert is one actionable signal surfaced on the dashboard.
type Alert struct {
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// BackupReminder fires when the last backup is older than seven days.
// A zero lastBackup means never backed up and always triggers.
func BackupReminder(lastBackup int64, now time.Time) (Alert, bool) {
	nowMs := now.UnixMilli()
	if lastBackup > 0 && nowMs-lastBackup <= BackupStaleAfterDays*DayMillis {
		return Alert{}, false
	}
	msg := "Você nunca exportou um backup. Exporte seus dados para não perder o histórico."
	if lastBackup > 0 {
		msg = fmt.Sprintf("Seu último backup foi há %d dias. Exporte seus dados para não perder o histórico.",
			DaysBetween(lastBackup, nowMs))
	}
	return Alert{Level: AlertWarning, Title: "Backup Seguro", Message: msg}, true
}

// CriticalRoutes flags cities whose worst partner is past the critical
// threshold. One city is named; several collapse into a count.
func CriticalRoutes(cities []CityActivity) (Alert, bool) {
	var overdue []CityActivity
	for _, c := range cities {
		if c.Staleness.Visited && c.Staleness.Days > CriticalAfterDays {
			overdue = append(overdue, c)
		}
	}
	switch len(overdue) {
	case 0:
		return Alert{}, false
	case 1:
		return Alert{
			Level: AlertCritical,
			Title: "Rota Crítica",
			Message: fmt.Sprintf("Você não visita %s há %d dias. O estoque dos PDVs certamente já acabou!",
				overdue[0].Name, overdue[0].Staleness.Days),
		}, true
	default:
		return Alert{
			Level:   AlertCritical,
			Title:   "Rotas Críticas",
			Message: fmt.Sprintf("%d cidades estão há mais de %d dias sem visita. Planeje um retorno urgente.", len(overdue), CriticalAfterDays),
		}, true
	}
}

// ReturnNudge picks the single most delayed visited city for the
// one-line dashboard nudge, or the all-clear state when no city has
// ever been visited.
func ReturnNudge(cities []CityActivity) Alert {
	var worst *CityActivity
	for i := range cities {
		c := &cities[i]
		if !c.Staleness.Visited {
			continue
		}
		if worst == nil || c.Staleness.Days > worst.Staleness.Days {
			worst = c
		}
	}
	if worst == nil {
		return Alert{
			Level:   AlertInfo,
			Title:   "Rotas em Dia",
			Message: "Todas as suas cidades foram visitadas recentemente. Continue mantendo esse ritmo excelente!",
		}
	}
	tail := "Planeje uma visita em breve para manter o giro alto."
	level := AlertWarning
	if worst.Staleness.Days > CriticalAfterDays {
		tail = "O estoque dos PDVs certamente já acabou!"
		level = AlertCritical
	}
	return Alert{
		Level:   level,
		Title:   "Alerta de Retorno",
		Message: fmt.Sprintf("Você não visita %s há %d dias. %s", worst.Name, worst.Staleness.Days, tail),
	}
}
