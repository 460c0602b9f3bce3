package search

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"mileage/pkg/logger"
	"mileage/pkg/seatsaero"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUpstreamClient struct {
	mock.Mock
}

func (m *MockUpstreamClient) Search(ctx context.Context, q seatsaero.Query) (*seatsaero.SearchResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seatsaero.SearchResponse), args.Error(1)
}

func validQuery() map[string]string {
	return map[string]string{
		"originAirport":      "JFK",
		"destinationAirport": "LHR",
		"departureDate":      "2025-06-01",
	}
}

func TestService_Search_Success(t *testing.T) {
	upstream := new(MockUpstreamClient)
	svc := NewService(upstream, logger.Nop())

	ctx := context.Background()
	upstream.On("Search", ctx, seatsaero.Query{
		OriginAirports:      []string{"JFK"},
		DestinationAirports: []string{"LHR"},
		Date:                "2025-06-01",
	}).Return(&seatsaero.SearchResponse{
		Data: []seatsaero.Availability{availability("one"), availability("two")},
	}, nil)

	entries, err := svc.Search(ctx, validQuery())
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, ids(entries))
	upstream.AssertExpectations(t)
}

func TestService_Search_ValidationSkipsUpstream(t *testing.T) {
	upstream := new(MockUpstreamClient)
	svc := NewService(upstream, logger.Nop())

	_, err := svc.Search(context.Background(), map[string]string{"departureDate": "june"})
	require.Error(t, err)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Len(t, appErr.Messages, 3)
	upstream.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestService_Search_UpstreamFailureIsGeneric(t *testing.T) {
	upstream := new(MockUpstreamClient)
	svc := NewService(upstream, logger.Nop())

	cause := errors.New("dial tcp: connection refused")
	upstream.On("Search", mock.Anything, mock.Anything).Return(nil, cause)

	_, err := svc.Search(context.Background(), validQuery())

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, []string{genericFetchError}, appErr.Messages)
	assert.ErrorIs(t, err, cause)
}

func TestService_Search_MalformedRecordIsUpstreamFailure(t *testing.T) {
	upstream := new(MockUpstreamClient)
	svc := NewService(upstream, logger.Nop())

	upstream.On("Search", mock.Anything, mock.Anything).Return(&seatsaero.SearchResponse{
		Data: []seatsaero.Availability{
			availability("good"),
			availability("bad", func(a *seatsaero.Availability) { a.Route = nil }),
		},
	}, nil)

	entries, err := svc.Search(context.Background(), validQuery())

	assert.Nil(t, entries)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.ErrorIs(t, err, ErrMalformedUpstreamResponse)
}

func TestService_Search_AppliesFilters(t *testing.T) {
	upstream := new(MockUpstreamClient)
	svc := NewService(upstream, logger.Nop())

	upstream.On("Search", mock.Anything, mock.Anything).Return(&seatsaero.SearchResponse{
		Data: []seatsaero.Availability{
			availability("indirect"),
			availability("direct-business", func(a *seatsaero.Availability) { a.JDirect = ptr(true) }),
		},
	}, nil)

	query := validQuery()
	query["onlyDirectFlights"] = "true"

	entries, err := svc.Search(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, []string{"direct-business"}, ids(entries))
}
