package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"eldview.openfreight.org/internal/models"
	"eldview.openfreight.org/internal/svg"
)

const sheetTitle = "Driver's Daily Log"

// LogSheet draws the 24-hour duty-status sheet for one calendar day onto
// the canvas: header, 4×24 grid, one segment per duty log entry, per-status
// totals, remarks, and the signature footer.
//
// Only entries whose log_date equals logDate are drawn; entries from other
// dates never leak into a sheet. A day without entries renders the full
// sheet frame with a placeholder note and zero totals. A malformed
// start/end time skips that entry's segment and nothing else.
func LogSheet(trip *models.Trip, logDate string, c *svg.Canvas, style Style) error {
	if c == nil {
		return ErrNoSurface
	}
	sheet := style.Sheet
	c.Clear(sheet.Background)

	var entries []models.DutyLogEntry
	if trip != nil {
		entries = entriesForDate(trip.EldLogs, logDate)
	}

	drawSheetHeader(c, trip, logDate, sheet)
	drawSheetGrid(c, sheet)

	if len(entries) == 0 {
		c.Text(sheet.GridLeft+sheet.GridWidth/2, sheet.GridTop+2*sheet.RowHeight,
			"No duty status records for this day", svg.TextStyle{
				Size:   sheet.FontSize + 2,
				Color:  sheet.TextColor,
				Anchor: "middle",
			})
	}

	for _, entry := range entries {
		drawStatusSegment(c, entry, style)
	}

	bottom := drawStatusTotals(c, entries, style)
	drawRemarks(c, entries, sheet, bottom)
	drawSheetFooter(c, sheet)

	return nil
}

// entriesForDate filters entries down to the target calendar date.
func entriesForDate(entries []models.DutyLogEntry, logDate string) []models.DutyLogEntry {
	matched := make([]models.DutyLogEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.LogDate == logDate {
			matched = append(matched, entry)
		}
	}
	return matched
}

// StatusTotals sums the stored duration_hours per duty status. The stored
// value is the upstream HOS accounting result and is never recomputed from
// the start/end times, even when the two disagree. Every regulatory status
// is present in the result, zero when absent from entries; entries with an
// unknown status contribute to no total.
func StatusTotals(entries []models.DutyLogEntry) map[models.DutyStatus]float64 {
	totals := make(map[models.DutyStatus]float64, len(models.AllDutyStatuses))
	for _, status := range models.AllDutyStatuses {
		totals[status] = 0
	}
	for _, entry := range entries {
		if entry.DutyStatus.Known() {
			totals[entry.DutyStatus] += entry.DurationHours
		}
	}
	return totals
}

// parseClock converts a time-of-day string "HH:MM" or "HH:MM:SS" to
// fractional hours. Seconds are validated when present but do not
// contribute to the value.
func parseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("malformed time of day %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed hour in %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed minute in %q", s)
	}
	seconds := 0
	if len(parts) == 3 {
		seconds, err = strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, fmt.Errorf("malformed second in %q", s)
		}
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	// 24:00 is the only valid hour-24 instant; anything past it would land
	// beyond the grid's right edge.
	if hours == 24 && (minutes != 0 || seconds != 0) {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return float64(hours) + float64(minutes)/60, nil
}

// hourToX maps a fractional hour onto the grid's horizontal extent.
func hourToX(hour float64, sheet SheetStyle) float64 {
	return sheet.GridLeft + hour/24*sheet.GridWidth
}

func drawSheetHeader(c *svg.Canvas, trip *models.Trip, logDate string, sheet SheetStyle) {
	width := float64(c.Width())
	c.Text(width/2, 40, sheetTitle, svg.TextStyle{
		Size:   sheet.FontSize + 6,
		Color:  sheet.TextColor,
		Weight: "bold",
		Anchor: "middle",
	})

	tripID := models.UnknownValue
	if trip != nil && trip.ID != "" {
		tripID = trip.ID
	}
	label := svg.TextStyle{Size: sheet.FontSize, Color: sheet.TextColor}
	c.Text(40, 75, "Driver: "+trip.DriverName(), label)
	c.Text(40, 95, "License: "+trip.LicenseNumber(), label)

	right := svg.TextStyle{Size: sheet.FontSize, Color: sheet.TextColor, Anchor: "end"}
	c.Text(width-40, 75, "Trip: "+tripID, right)
	c.Text(width-40, 95, "Date: "+logDate, right)
}

func drawSheetGrid(c *svg.Canvas, sheet SheetStyle) {
	gridHeight := sheet.RowHeight * float64(len(models.AllDutyStatuses))
	gridBottom := sheet.GridTop + gridHeight

	c.Rect(sheet.GridLeft, sheet.GridTop, sheet.GridWidth, gridHeight, sheet.GridColor, 1.5, "")

	// Inner horizontal band separators.
	for row := 1; row < len(models.AllDutyStatuses); row++ {
		y := sheet.GridTop + float64(row)*sheet.RowHeight
		c.Line(sheet.GridLeft, y, sheet.GridLeft+sheet.GridWidth, y, sheet.GridColor, 1)
	}

	// Inner hour divisions plus the 00–24 labels across the top edge.
	hourLabel := svg.TextStyle{Size: sheet.FontSize - 2, Color: sheet.TextColor, Anchor: "middle"}
	for hour := 0; hour <= 24; hour++ {
		x := hourToX(float64(hour), sheet)
		if hour > 0 && hour < 24 {
			c.Line(x, sheet.GridTop, x, gridBottom, sheet.GridColor, 0.5)
		}
		c.Text(x, sheet.GridTop-8, fmt.Sprintf("%02d", hour), hourLabel)
	}

	rowLabel := svg.TextStyle{Size: sheet.FontSize, Color: sheet.TextColor, Anchor: "end"}
	for row, status := range models.AllDutyStatuses {
		y := sheet.GridTop + float64(row)*sheet.RowHeight + sheet.RowHeight/2 + 4
		c.Text(sheet.GridLeft-10, y, status.Label(), rowLabel)
	}
}

// drawStatusSegment plots one duty interval as a horizontal segment at its
// row's mid-height. Entries with an unknown status or a malformed time
// draw nothing; overlapping segments are drawn independently, with no
// merging or overlap resolution.
func drawStatusSegment(c *svg.Canvas, entry models.DutyLogEntry, style Style) {
	sheet := style.Sheet
	row, ok := StatusRow(entry.DutyStatus)
	if !ok {
		return
	}
	start, err := parseClock(entry.StartTime)
	if err != nil {
		return
	}
	end, err := parseClock(entry.EndTime)
	if err != nil {
		return
	}

	xStart := hourToX(start, sheet)
	xEnd := hourToX(end, sheet)
	y := sheet.GridTop + float64(row)*sheet.RowHeight + sheet.RowHeight/2

	c.Line(xStart, y, xEnd, y, style.StatusColor(entry.DutyStatus), sheet.SegmentWidth)

	timeLabel := svg.TextStyle{Size: sheet.FontSize - 2, Color: sheet.TextColor, Anchor: "middle"}
	c.Text(xStart, y-8, entry.StartTime, timeLabel)
	// The end label is suppressed on short segments to avoid collisions.
	// The threshold is the configured floor or the label's own estimated
	// width, whichever is larger, so bigger fonts suppress sooner.
	threshold := math.Max(sheet.MinLabelWidth, svg.EstimateTextWidth(entry.EndTime, timeLabel.Size))
	if xEnd-xStart > threshold {
		c.Text(xEnd, y-8, entry.EndTime, timeLabel)
	}
}

// drawStatusTotals renders the four per-status hour totals below the grid
// and returns the y coordinate where the following section may begin.
func drawStatusTotals(c *svg.Canvas, entries []models.DutyLogEntry, style Style) float64 {
	sheet := style.Sheet
	totals := StatusTotals(entries)
	top := sheet.GridTop + sheet.RowHeight*float64(len(models.AllDutyStatuses)) + 40

	c.Text(40, top, "Hours Summary", svg.TextStyle{
		Size:   sheet.FontSize + 1,
		Color:  sheet.TextColor,
		Weight: "bold",
	})

	lineHeight := sheet.FontSize + 8
	y := top + lineHeight
	for _, status := range models.AllDutyStatuses {
		c.Text(40, y, fmt.Sprintf("%s: %.2f h", status.Label(), totals[status]), svg.TextStyle{
			Size:  sheet.FontSize,
			Color: style.StatusColor(status),
		})
		y += lineHeight
	}
	return top
}

// drawRemarks lists "start-time: remark" lines in input order, stopping
// before the footer area rather than wrapping or overflowing.
func drawRemarks(c *svg.Canvas, entries []models.DutyLogEntry, sheet SheetStyle, top float64) {
	const remarksX = 340.0
	c.Text(remarksX, top, "Remarks", svg.TextStyle{
		Size:   sheet.FontSize + 1,
		Color:  sheet.TextColor,
		Weight: "bold",
	})

	lineHeight := sheet.FontSize + 8
	maxY := float64(c.Height()) - 70
	y := top + lineHeight
	for _, entry := range entries {
		if entry.Remarks == "" {
			continue
		}
		if y > maxY {
			break
		}
		c.Text(remarksX, y, entry.StartTime+": "+entry.Remarks, svg.TextStyle{
			Size:  sheet.FontSize,
			Color: sheet.TextColor,
		})
		y += lineHeight
	}
}

// drawSheetFooter renders the static signature and date lines. They are
// labeled blanks only; nothing about them is interactive.
func drawSheetFooter(c *svg.Canvas, sheet SheetStyle) {
	width := float64(c.Width())
	height := float64(c.Height())
	label := svg.TextStyle{Size: sheet.FontSize - 2, Color: sheet.TextColor}

	c.Line(40, height-45, 340, height-45, sheet.TextColor, 1)
	c.Text(40, height-28, "Driver Signature", label)

	c.Line(width-280, height-45, width-40, height-45, sheet.TextColor, 1)
	c.Text(width-280, height-28, "Date", label)
}
