package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"tripdesk/config"
	"tripdesk/infras/genai"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/assistant/model/dto"
	bookingRepo "tripdesk/internal/domains/booking/repository"
	transactionRepo "tripdesk/internal/domains/transaction/repository"
	treasuryRepo "tripdesk/internal/domains/treasury/repository"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"
	"tripdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

const snapshotLimit = 20

type Assistant interface {
	Ask(ctx context.Context, req dto.AskRequest) (dto.AskResponse, error)
	LookupFlight(ctx context.Context, flightNumber, date string) dto.FlightInfo
	LookupHotel(ctx context.Context, name, city string) dto.HotelInfo
}

type serviceImpl struct {
	genai        genai.Client
	bookingRepo  bookingRepo.Booking
	txRepo       transactionRepo.Transaction
	treasuryRepo treasuryRepo.Treasury
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	genai genai.Client,
	booking bookingRepo.Booking,
	txRepo transactionRepo.Transaction,
	treasury treasuryRepo.Treasury,
	cfg *config.Config,
	otel otel.Otel,
) Assistant {
	return &serviceImpl{
		genai:        genai,
		bookingRepo:  booking,
		txRepo:       txRepo,
		treasuryRepo: treasury,
		cfg:          cfg,
		otel:         otel,
	}
}

// extractJSON pulls a JSON object out of a model reply: code fences are
// stripped and the substring between the first '{' and the last '}' is
// taken. Model output is untrusted; a reply with no object in it returns
// empty.
func extractJSON(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")

	if start == -1 || end == -1 || end <= start {
		return constant.Empty
	}

	return cleaned[start : end+1]
}

func (s *serviceImpl) snapshot(ctx context.Context) (dto.Snapshot, error) {
	snapshot := dto.Snapshot{
		Date:         timezone.Now(),
		BaseCurrency: s.cfg.App.Currency.Base,
	}

	total, err := s.bookingRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return snapshot, fmt.Errorf("failed to count bookings for snapshot: %w", err)
	}

	snapshot.TotalBookings = total

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{Limit: snapshotLimit, SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}, gDto.FilterGroup{})
	if err != nil {
		return snapshot, fmt.Errorf("failed to get bookings for snapshot: %w", err)
	}

	snapshot.RecentBookings = make([]dto.BookingBrief, len(bookings))
	for i, booking := range bookings {
		snapshot.RecentBookings[i] = dto.BookingBrief{
			FileNumber:    booking.FileNumber,
			ClientName:    booking.ClientName,
			Type:          booking.Type,
			Status:        booking.Status,
			Amount:        booking.Amount,
			Profit:        booking.Profit,
			PaymentStatus: booking.PaymentStatus,
		}
	}

	transactions, err := s.txRepo.GetAll(ctx, gDto.QueryParams{Limit: snapshotLimit, SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}, gDto.FilterGroup{})
	if err != nil {
		return snapshot, fmt.Errorf("failed to get transactions for snapshot: %w", err)
	}

	snapshot.RecentEntries = make([]dto.EntryBrief, len(transactions))
	for i, transaction := range transactions {
		snapshot.RecentEntries[i] = dto.EntryBrief{
			Type:     transaction.Type,
			Category: transaction.Category,
			Amount:   transaction.Amount,
		}
	}

	treasuries, err := s.treasuryRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return snapshot, fmt.Errorf("failed to get treasuries for snapshot: %w", err)
	}

	for _, treasury := range treasuries {
		snapshot.TreasuryBalance += treasury.Balance
	}

	return snapshot, nil
}

// Ask answers a free-text financial question against a snapshot of current
// stats. Failures here are real errors: unlike the lookups, the user asked
// for this answer directly.
func (s *serviceImpl) Ask(ctx context.Context, req dto.AskRequest) (res dto.AskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ask")
	defer scope.End()
	defer scope.TraceIfError(err)

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to build assistant snapshot")

		return res, err
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return res, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	prompt := fmt.Sprintf(
		"You are a financial assistant for a travel agency. Answer the question using only this data, in plain prose.\n\nData: %s\n\nQuestion: %s",
		data, req.Question)

	answer, err := s.genai.GenerateContent(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate assistant answer")

		return res, failure.InternalError(fmt.Errorf("assistant is unavailable: %w", err)) // nolint:wrapcheck
	}

	res.Answer = strings.TrimSpace(answer)

	return res, nil
}

// LookupFlight asks the model for a flight's schedule. This is best-effort
// enrichment: every failure path returns an empty, not-found result and never
// an error, so the booking form stays usable with manual entry.
func (s *serviceImpl) LookupFlight(ctx context.Context, flightNumber, date string) dto.FlightInfo {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LookupFlight")
	defer scope.End()

	prompt := fmt.Sprintf(
		`Return ONLY a JSON object with keys airline, flightNumber, origin, destination, departureTime, arrivalTime for flight %s on %s. If unknown, return {}.`,
		flightNumber, date)

	raw, err := s.genai.GenerateContent(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("flight", flightNumber).Msg("flight lookup unavailable")

		return dto.FlightInfo{}
	}

	payload := extractJSON(raw)
	if payload == constant.Empty {
		return dto.FlightInfo{}
	}

	var info dto.FlightInfo

	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		log.Warn().Err(err).Str("flight", flightNumber).Msg("failed to parse flight lookup reply")

		return dto.FlightInfo{}
	}

	info.Found = info.Airline != constant.Empty || info.DepartureTime != constant.Empty

	return info
}

// LookupHotel asks the model for a hotel's address. Best-effort, same
// contract as LookupFlight.
func (s *serviceImpl) LookupHotel(ctx context.Context, name, city string) dto.HotelInfo {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LookupHotel")
	defer scope.End()

	prompt := fmt.Sprintf(
		`Return ONLY a JSON object with keys name, city, address, phone for the hotel %q in %s. If unknown, return {}.`,
		name, city)

	raw, err := s.genai.GenerateContent(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("hotel", name).Msg("hotel lookup unavailable")

		return dto.HotelInfo{}
	}

	payload := extractJSON(raw)
	if payload == constant.Empty {
		return dto.HotelInfo{}
	}

	var info dto.HotelInfo

	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		log.Warn().Err(err).Str("hotel", name).Msg("failed to parse hotel lookup reply")

		return dto.HotelInfo{}
	}

	info.Found = info.Address != constant.Empty

	return info
}
