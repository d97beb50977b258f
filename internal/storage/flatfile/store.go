// Package flatfile persists park entities as plain delimited text: one
// record per line, pipe-separated fields, dates as 2006-01-02. A missing
// file loads as an empty catalogue.
package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cimillas/park-operations/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	nullField  = "null"

	employeesFile       = "employees.txt"
	attractionsFile     = "attractions.txt"
	basicTicketsFile    = "tickets_basic.txt"
	seasonalTicketsFile = "tickets_seasonal.txt"
	singleTicketsFile   = "tickets_single.txt"
	fastPassesFile      = "fast_passes.txt"
)

// Store reads and writes record files under a single directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) writeLines(name string, lines []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *Store) readLines(name string) ([]string, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lines, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return nullField
	}
	return t.UTC().Format(dateLayout)
}

func parseDate(field string) (time.Time, error) {
	if field == nullField || field == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, field)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func formatDateList(days []time.Time) string {
	if len(days) == 0 {
		return nullField
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = formatDate(d)
	}
	return strings.Join(parts, ",")
}

func parseDateList(field string) ([]time.Time, error) {
	if field == nullField || field == "" {
		return nil, nil
	}
	parts := strings.Split(field, ",")
	out := make([]time.Time, 0, len(parts))
	for _, p := range parts {
		d, err := parseDate(p)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func formatStringList(values []string) string {
	if len(values) == 0 {
		return nullField
	}
	return strings.Join(values, ",")
}

func parseStringList(field string) []string {
	if field == nullField || field == "" {
		return nil
	}
	return strings.Split(field, ",")
}

// SaveEmployees writes the employee catalogue.
func (s *Store) SaveEmployees(employees []*domain.Employee) error {
	lines := make([]string, 0, len(employees))
	for _, e := range employees {
		lines = append(lines, strings.Join([]string{
			e.ID,
			e.Name,
			e.Email,
			string(e.Role),
			strconv.FormatBool(e.GeneralService),
			strconv.FormatBool(e.ExtraHours),
			strconv.FormatBool(e.Certified),
			formatDate(e.CertifiedFrom),
			formatDate(e.CertifiedUntil),
		}, "|"))
	}
	return s.writeLines(employeesFile, lines)
}

// LoadEmployees reads the employee catalogue.
func (s *Store) LoadEmployees() ([]*domain.Employee, error) {
	lines, err := s.readLines(employeesFile)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Employee, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, "|")
		if len(fields) != 9 {
			return nil, fmt.Errorf("%s line %d: expected 9 fields, got %d", employeesFile, i+1, len(fields))
		}
		generalService, _ := strconv.ParseBool(fields[4])
		extraHours, _ := strconv.ParseBool(fields[5])
		certified, _ := strconv.ParseBool(fields[6])
		from, err := parseDate(fields[7])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: certified_from: %w", employeesFile, i+1, err)
		}
		until, err := parseDate(fields[8])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: certified_until: %w", employeesFile, i+1, err)
		}
		out = append(out, &domain.Employee{
			ID:             fields[0],
			Name:           fields[1],
			Email:          fields[2],
			Role:           domain.EmployeeRole(fields[3]),
			GeneralService: generalService,
			ExtraHours:     extraHours,
			Certified:      certified,
			CertifiedFrom:  from,
			CertifiedUntil: until,
		})
	}
	return out, nil
}

// SaveAttractions writes the attraction catalogue, including each
// attraction's availability window.
func (s *Store) SaveAttractions(attractions []*domain.Attraction) error {
	lines := make([]string, 0, len(attractions))
	for _, a := range attractions {
		seasonal := false
		var start, end time.Time
		var blackout []time.Time
		if a.Window != nil {
			seasonal = a.Window.Seasonal()
			start, end = a.Window.SeasonRange()
			blackout = a.Window.BlackoutDays()
		}
		lines = append(lines, strings.Join([]string{
			a.ID,
			a.Name,
			string(a.Kind),
			a.Location,
			a.ClimateRestriction,
			string(a.Exclusivity),
			strconv.Itoa(a.RequiredStaff),
			strconv.Itoa(a.Capacity),
			string(a.Risk),
			strconv.FormatFloat(a.MinHeightCM, 'f', -1, 64),
			strconv.FormatFloat(a.MaxHeightCM, 'f', -1, 64),
			strconv.FormatFloat(a.MinWeightKG, 'f', -1, 64),
			strconv.FormatFloat(a.MaxWeightKG, 'f', -1, 64),
			formatStringList(a.HealthRestrictions),
			strconv.Itoa(a.MinAge),
			strconv.FormatBool(seasonal),
			formatDate(start),
			formatDate(end),
			formatDateList(blackout),
		}, "|"))
	}
	return s.writeLines(attractionsFile, lines)
}

// LoadAttractions reads the attraction catalogue. Rosters come back empty;
// they are an in-process view.
func (s *Store) LoadAttractions() ([]*domain.Attraction, error) {
	lines, err := s.readLines(attractionsFile)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Attraction, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, "|")
		if len(fields) != 19 {
			return nil, fmt.Errorf("%s line %d: expected 19 fields, got %d", attractionsFile, i+1, len(fields))
		}
		requiredStaff, _ := strconv.Atoi(fields[6])
		capacity, _ := strconv.Atoi(fields[7])
		minHeight, _ := strconv.ParseFloat(fields[9], 64)
		maxHeight, _ := strconv.ParseFloat(fields[10], 64)
		minWeight, _ := strconv.ParseFloat(fields[11], 64)
		maxWeight, _ := strconv.ParseFloat(fields[12], 64)
		minAge, _ := strconv.Atoi(fields[14])
		seasonal, _ := strconv.ParseBool(fields[15])
		start, err := parseDate(fields[16])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: season_start: %w", attractionsFile, i+1, err)
		}
		end, err := parseDate(fields[17])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: season_end: %w", attractionsFile, i+1, err)
		}
		blackout, err := parseDateList(fields[18])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: blackout_days: %w", attractionsFile, i+1, err)
		}
		out = append(out, &domain.Attraction{
			ID:                 fields[0],
			Name:               fields[1],
			Kind:               domain.AttractionKind(fields[2]),
			Location:           fields[3],
			ClimateRestriction: fields[4],
			Exclusivity:        domain.ExclusivityTier(fields[5]),
			RequiredStaff:      requiredStaff,
			Capacity:           capacity,
			Risk:               domain.RiskLevel(fields[8]),
			MinHeightCM:        minHeight,
			MaxHeightCM:        maxHeight,
			MinWeightKG:        minWeight,
			MaxWeightKG:        maxWeight,
			HealthRestrictions: parseStringList(fields[13]),
			MinAge:             minAge,
			Window:             domain.RestoreWindow(seasonal, start, end, blackout),
			Roster:             domain.NewWorkplaceRoster(),
		})
	}
	return out, nil
}

func ticketFields(t domain.Ticket) []string {
	return []string{
		t.ID,
		t.Name,
		strconv.Itoa(t.Count),
		string(t.Exclusivity),
		formatDate(t.PurchaseDate),
		string(t.Status),
		t.Channel,
		strconv.FormatBool(t.EmployeeDiscount),
		strconv.FormatBool(t.Used),
	}
}

func parseTicketFields(fields []string) (domain.Ticket, error) {
	count, _ := strconv.Atoi(fields[2])
	purchased, err := parseDate(fields[4])
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("purchase_date: %w", err)
	}
	discount, _ := strconv.ParseBool(fields[7])
	used, _ := strconv.ParseBool(fields[8])
	return domain.Ticket{
		ID:               fields[0],
		Name:             fields[1],
		Count:            count,
		Exclusivity:      domain.ExclusivityTier(fields[3]),
		PurchaseDate:     purchased,
		Status:           domain.TicketStatus(fields[5]),
		Channel:          fields[6],
		EmployeeDiscount: discount,
		Used:             used,
	}, nil
}

// SaveBasicTickets writes basic tickets.
func (s *Store) SaveBasicTickets(tickets []*domain.BasicTicket) error {
	lines := make([]string, 0, len(tickets))
	for _, t := range tickets {
		lines = append(lines, strings.Join(append(ticketFields(t.Ticket), t.Category), "|"))
	}
	return s.writeLines(basicTicketsFile, lines)
}

// LoadBasicTickets reads basic tickets.
func (s *Store) LoadBasicTickets() ([]*domain.BasicTicket, error) {
	lines, err := s.readLines(basicTicketsFile)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.BasicTicket, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, "|")
		if len(fields) != 10 {
			return nil, fmt.Errorf("%s line %d: expected 10 fields, got %d", basicTicketsFile, i+1, len(fields))
		}
		base, err := parseTicketFields(fields)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", basicTicketsFile, i+1, err)
		}
		out = append(out, &domain.BasicTicket{Ticket: base, Category: fields[9]})
	}
	return out, nil
}

// SaveSeasonalTickets writes seasonal tickets.
func (s *Store) SaveSeasonalTickets(tickets []*domain.SeasonalTicket) error {
	lines := make([]string, 0, len(tickets))
	for _, t := range tickets {
		fields := append(ticketFields(t.Ticket),
			formatDate(t.ValidFrom),
			formatDate(t.ValidTo),
			t.SeasonType,
			t.Category,
		)
		lines = append(lines, strings.Join(fields, "|"))
	}
	return s.writeLines(seasonalTicketsFile, lines)
}

// LoadSeasonalTickets reads seasonal tickets. Clocks are left nil; the
// ticket service rewires them on restore.
func (s *Store) LoadSeasonalTickets() ([]*domain.SeasonalTicket, error) {
	lines, err := s.readLines(seasonalTicketsFile)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.SeasonalTicket, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, "|")
		if len(fields) != 13 {
			return nil, fmt.Errorf("%s line %d: expected 13 fields, got %d", seasonalTicketsFile, i+1, len(fields))
		}
		base, err := parseTicketFields(fields)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", seasonalTicketsFile, i+1, err)
		}
		from, err := parseDate(fields[9])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: valid_from: %w", seasonalTicketsFile, i+1, err)
		}
		to, err := parseDate(fields[10])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: valid_to: %w", seasonalTicketsFile, i+1, err)
		}
		out = append(out, &domain.SeasonalTicket{
			Ticket:     base,
			ValidFrom:  from,
			ValidTo:    to,
			SeasonType: fields[11],
			Category:   fields[12],
		})
	}
	return out, nil
}

// SaveSingleTickets writes single-attraction tickets, referencing the bound
// attraction by ID.
func (s *Store) SaveSingleTickets(tickets []*domain.SingleAttractionTicket) error {
	lines := make([]string, 0, len(tickets))
	for _, t := range tickets {
		attractionID := nullField
		if t.Attraction != nil {
			attractionID = t.Attraction.ID
		}
		lines = append(lines, strings.Join(append(ticketFields(t.Ticket), attractionID), "|"))
	}
	return s.writeLines(singleTicketsFile, lines)
}

// LoadSingleTickets reads single-attraction tickets, re-linking each to its
// attraction through the supplied lookup. A ticket whose attraction is gone
// loads unbound and denies all access.
func (s *Store) LoadSingleTickets(attractionsByID map[string]*domain.Attraction) ([]*domain.SingleAttractionTicket, error) {
	lines, err := s.readLines(singleTicketsFile)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.SingleAttractionTicket, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, "|")
		if len(fields) != 10 {
			return nil, fmt.Errorf("%s line %d: expected 10 fields, got %d", singleTicketsFile, i+1, len(fields))
		}
		base, err := parseTicketFields(fields)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", singleTicketsFile, i+1, err)
		}
		ticket := &domain.SingleAttractionTicket{Ticket: base}
		if fields[9] != nullField {
			ticket.Attraction = attractionsByID[fields[9]]
		}
		out = append(out, ticket)
	}
	return out, nil
}

// SaveFastPasses writes issued fast passes.
func (s *Store) SaveFastPasses(passes []*domain.FastPass) error {
	lines := make([]string, 0, len(passes))
	for _, p := range passes {
		lines = append(lines, strings.Join([]string{
			p.ID,
			p.TicketID,
			formatDate(p.ValidDay),
			strconv.FormatBool(p.Used),
		}, "|"))
	}
	return s.writeLines(fastPassesFile, lines)
}

// LoadFastPasses reads issued fast passes.
func (s *Store) LoadFastPasses() ([]*domain.FastPass, error) {
	lines, err := s.readLines(fastPassesFile)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.FastPass, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, "|")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%s line %d: expected 4 fields, got %d", fastPassesFile, i+1, len(fields))
		}
		day, err := parseDate(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: valid_day: %w", fastPassesFile, i+1, err)
		}
		used, _ := strconv.ParseBool(fields[3])
		out = append(out, &domain.FastPass{
			ID:       fields[0],
			TicketID: fields[1],
			ValidDay: day,
			Used:     used,
		})
	}
	return out, nil
}
