package service

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/apperrors"
	"github.com/gymdesk/gymdesk-backend/internal/models"
	"github.com/gymdesk/gymdesk-backend/internal/repository"
)

const (
	icsProdID   = "-//GymDesk//Reservations//BG"
	icsTimeZone = "Europe/Sofia"
	icsUIDHost  = "gymdesk.local"
)

type ExportService interface {
	// WeeklySchedule renders the user's active reservations in [start, end]
	// as a printable HTML document.
	WeeklySchedule(ctx context.Context, userID uint, start, end time.Time) ([]byte, error)
	// ICalendar renders the same range as an .ics document with one VEVENT
	// per reservation.
	ICalendar(ctx context.Context, userID uint, start, end time.Time) ([]byte, error)
}

type exportService struct {
	reservationRepo repository.ReservationRepository
	userRepo        repository.UserRepository
}

func NewExportService(reservationRepo repository.ReservationRepository, userRepo repository.UserRepository) ExportService {
	return &exportService{reservationRepo: reservationRepo, userRepo: userRepo}
}

func (s *exportService) fetch(ctx context.Context, userID uint, start, end time.Time) (*models.User, []models.Reservation, error) {
	if start.After(end) {
		return nil, nil, apperrors.Invalidf("start_date must be before end_date")
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, notFoundOr(err, "user %d does not exist", userID)
	}
	// The range is a pair of dates, both inclusive, so widen the upper
	// bound to the following midnight before filtering on slot bounds.
	rangeStart := dateOf(start)
	rangeEnd := dateOf(end).AddDate(0, 0, 1)
	reservations, err := s.reservationRepo.FindByUserAndDateRange(ctx, userID, rangeStart, rangeEnd, models.StatusActive)
	if err != nil {
		return nil, nil, err
	}
	return user, reservations, nil
}

// --- HTML weekly schedule ---

type scheduleDay struct {
	Name         string
	Date         string
	Reservations []models.Reservation
}

type scheduleData struct {
	Email       string
	From        string
	To          string
	Days        []scheduleDay
	GeneratedAt string
}

var dayNamesBG = [...]string{"Неделя", "Понеделник", "Вторник", "Сряда", "Четвъртък", "Петък", "Събота"}

var scheduleTmpl = template.Must(template.New("schedule").Funcs(template.FuncMap{
	"clock": func(t time.Time) string { return t.Format("15:04") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Седмичен график - {{.Email}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: Arial, sans-serif; padding: 20px; background: white; }
        .header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #333; padding-bottom: 15px; }
        .header h1 { color: #333; font-size: 24px; margin-bottom: 5px; }
        .header p { color: #666; font-size: 14px; }
        .date-range { text-align: center; color: #666; font-size: 14px; margin-bottom: 20px; }
        .schedule-grid { display: grid; gap: 20px; }
        .day-section { border: 1px solid #ddd; border-radius: 8px; overflow: hidden; page-break-inside: avoid; }
        .day-header { background: #f0f0f0; padding: 12px 15px; font-weight: bold; font-size: 16px; border-bottom: 1px solid #ddd; }
        .reservation { padding: 15px; border-bottom: 1px solid #eee; display: flex; justify-content: space-between; align-items: start; }
        .reservation:last-child { border-bottom: none; }
        .reservation-info { flex: 1; }
        .resource-name { font-weight: bold; color: #333; margin-bottom: 5px; }
        .time { color: #666; font-size: 14px; margin-bottom: 3px; }
        .resource-type { display: inline-block; background: #e0e0e0; padding: 2px 8px; border-radius: 3px; font-size: 12px; color: #555; }
        .notes { color: #888; font-size: 12px; margin-top: 5px; font-style: italic; }
        .empty-day { padding: 15px; color: #999; text-align: center; }
        .color-box { width: 12px; height: 12px; border-radius: 3px; margin-right: 10px; flex-shrink: 0; margin-top: 2px; }
        .footer { text-align: center; color: #999; font-size: 12px; margin-top: 30px; border-top: 1px solid #eee; padding-top: 15px; }
        @media print { body { padding: 0; } .day-section { page-break-inside: avoid; } }
    </style>
</head>
<body>
    <div class="header">
        <h1>Мой Седмичен График</h1>
        <p>GymDesk Резервационна Система</p>
    </div>
    <div class="date-range">{{.From}} - {{.To}} | Потребител: {{.Email}}</div>
    <div class="schedule-grid">
{{- range .Days}}
        <div class="day-section">
            <div class="day-header">{{.Name}} - {{.Date}}</div>
            <div class="reservations">
{{- if not .Reservations}}
                <div class="empty-day">Няма резервации</div>
{{- else}}
{{- range .Reservations}}
                <div class="reservation">
                    <div class="color-box" style="background-color: {{.Resource.ColorCode}};"></div>
                    <div class="reservation-info">
                        <div class="resource-name">{{.Resource.Name}}</div>
                        <div class="time">{{clock .TimeSlot.StartTime}} - {{clock .TimeSlot.EndTime}}</div>
                        <span class="resource-type">{{.Resource.Type}}</span>
{{- if .Notes}}
                        <div class="notes">Бележка: {{.Notes}}</div>
{{- end}}
                    </div>
                </div>
{{- end}}
{{- end}}
            </div>
        </div>
{{- end}}
    </div>
    <div class="footer">Генерирано на: {{.GeneratedAt}}</div>
</body>
</html>
`))

func (s *exportService) WeeklySchedule(ctx context.Context, userID uint, start, end time.Time) ([]byte, error) {
	user, reservations, err := s.fetch(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.Reservation)
	for _, r := range reservations {
		key := r.TimeSlot.StartTime.Format("2006-01-02")
		byDate[key] = append(byDate[key], r)
	}

	data := scheduleData{
		Email:       user.Email,
		From:        start.Format("02.01.2006"),
		To:          end.Format("02.01.2006"),
		GeneratedAt: time.Now().Format("02.01.2006 15:04"),
	}

	day := dateOf(start)
	last := dateOf(end)
	for !day.After(last) {
		data.Days = append(data.Days, scheduleDay{
			Name:         dayNamesBG[day.Weekday()],
			Date:         day.Format("02.01.2006"),
			Reservations: byDate[day.Format("2006-01-02")],
		})
		day = day.AddDate(0, 0, 1)
	}

	var buf strings.Builder
	if err := scheduleTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// --- iCalendar ---

func (s *exportService) ICalendar(ctx context.Context, userID uint, start, end time.Time) ([]byte, error) {
	_, reservations, err := s.fetch(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	// Slot times are stored in UTC; TZID-qualified properties carry local
	// wall-clock time, so convert before formatting.
	loc, err := time.LoadLocation(icsTimeZone)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format("20060102T150405Z")

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:" + icsProdID + "\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")
	b.WriteString("X-WR-CALNAME:GymDesk - Мои Резервации\r\n")
	b.WriteString("X-WR-TIMEZONE:" + icsTimeZone + "\r\n")
	b.WriteString("BEGIN:VTIMEZONE\r\n")
	b.WriteString("TZID:" + icsTimeZone + "\r\n")
	b.WriteString("BEGIN:STANDARD\r\n")
	b.WriteString("DTSTART:19701025T040000\r\n")
	b.WriteString("TZOFFSETFROM:+0300\r\n")
	b.WriteString("TZOFFSETTO:+0200\r\n")
	b.WriteString("TZNAME:EET\r\n")
	b.WriteString("END:STANDARD\r\n")
	b.WriteString("BEGIN:DAYLIGHT\r\n")
	b.WriteString("DTSTART:19700329T030000\r\n")
	b.WriteString("TZOFFSETFROM:+0200\r\n")
	b.WriteString("TZOFFSETTO:+0300\r\n")
	b.WriteString("TZNAME:EEST\r\n")
	b.WriteString("END:DAYLIGHT\r\n")
	b.WriteString("END:VTIMEZONE\r\n")

	for _, r := range reservations {
		writeEvent(&b, &r, now, loc)
	}

	b.WriteString("END:VCALENDAR\r\n")
	return []byte(b.String()), nil
}

func writeEvent(b *strings.Builder, r *models.Reservation, dtstamp string, loc *time.Location) {
	description := escapeICS(fmt.Sprintf("%s: %s", r.Resource.Type, r.Resource.Name))
	if r.HasNotes() {
		description += "\\nБележка: " + escapeICS(*r.Notes)
	}

	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(b, "UID:gymdesk-res-%d@%s\r\n", r.ID, icsUIDHost)
	b.WriteString("DTSTAMP:" + dtstamp + "\r\n")
	fmt.Fprintf(b, "DTSTART;TZID=%s:%s\r\n", icsTimeZone, r.TimeSlot.StartTime.In(loc).Format("20060102T150405"))
	fmt.Fprintf(b, "DTEND;TZID=%s:%s\r\n", icsTimeZone, r.TimeSlot.EndTime.In(loc).Format("20060102T150405"))
	b.WriteString("SUMMARY:" + escapeICS(r.Resource.Name) + "\r\n")
	b.WriteString("DESCRIPTION:" + description + "\r\n")
	b.WriteString("LOCATION:GymDesk\r\n")
	b.WriteString("STATUS:CONFIRMED\r\n")
	b.WriteString("SEQUENCE:0\r\n")
	b.WriteString("END:VEVENT\r\n")
}

// escapeICS escapes text per RFC 5545: backslash, newline, semicolon and
// comma; carriage returns are dropped.
func escapeICS(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", `\n`)
	text = strings.ReplaceAll(text, ";", `\;`)
	text = strings.ReplaceAll(text, ",", `\,`)
	return text
}

func dateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
