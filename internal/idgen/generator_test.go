package idgen_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/veloralabs/agencydesk/internal/config"
	"github.com/veloralabs/agencydesk/internal/domain/sequence"
	"github.com/veloralabs/agencydesk/internal/idgen"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/testutil"
	"github.com/veloralabs/agencydesk/internal/types"
)

type GeneratorTestSuite struct {
	suite.Suite
	ctx   context.Context
	seq   *testutil.InMemorySequenceStore
	idGen *idgen.Generator
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	s.seq = testutil.NewInMemorySequenceStore()

	log, err := logger.NewLogger(&config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
	})
	s.Require().NoError(err)

	s.idGen = idgen.NewGenerator(s.seq, log)
}

func (s *GeneratorTestSuite) TestNextClientID() {
	at := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	id, err := s.idGen.NextClientID(s.ctx, types.ProjectCodeEnterprise, types.PlatformCodeApp, "IND", at)
	s.NoError(err)
	s.Equal("EA701-IND-253", id.ID)
	s.Equal(int64(1), id.Sequence)

	// second allocation advances the global counter regardless of codes
	id, err = s.idGen.NextClientID(s.ctx, types.ProjectCodeStartup, types.PlatformCodeWeb, "usa", at)
	s.NoError(err)
	s.Equal("SW702-USA-253", id.ID)
	s.Equal(int64(2), id.Sequence)
}

func (s *GeneratorTestSuite) TestNextClientIDHexMonths() {
	testCases := []struct {
		month    time.Month
		expected string
	}{
		{time.January, "EA701-IND-251"},
		{time.September, "EA701-IND-259"},
		{time.October, "EA701-IND-25A"},
		{time.November, "EA701-IND-25B"},
		{time.December, "EA701-IND-25C"},
	}

	for _, tc := range testCases {
		s.seq.Clear()
		at := time.Date(2025, tc.month, 1, 0, 0, 0, 0, time.UTC)
		id, err := s.idGen.NextClientID(s.ctx, types.ProjectCodeEnterprise, types.PlatformCodeApp, "IND", at)
		s.NoError(err)
		s.Equal(tc.expected, id.ID)
	}
}

func (s *GeneratorTestSuite) TestNextClientIDValidation() {
	at := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, err := s.idGen.NextClientID(s.ctx, "X", types.PlatformCodeApp, "IND", at)
	s.Error(err)

	_, err = s.idGen.NextClientID(s.ctx, types.ProjectCodeEnterprise, "X", "IND", at)
	s.Error(err)

	_, err = s.idGen.NextClientID(s.ctx, types.ProjectCodeEnterprise, types.PlatformCodeApp, "", at)
	s.Error(err)

	// failed validation must not consume a sequence value
	s.Equal(int64(0), s.seq.Current(sequence.ClientKey()))
}

func (s *GeneratorTestSuite) TestNextClientIDWidensPastNinetyNine() {
	at := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 99; i++ {
		_, err := s.seq.Next(s.ctx, sequence.ClientKey())
		s.Require().NoError(err)
	}

	id, err := s.idGen.NextClientID(s.ctx, types.ProjectCodeEnterprise, types.PlatformCodeApp, "IND", at)
	s.NoError(err)
	s.Equal("EA7100-IND-253", id.ID)
	s.Equal(int64(100), id.Sequence)
}

func (s *GeneratorTestSuite) TestNextQuotationID() {
	id, err := s.idGen.NextQuotationID(s.ctx, "EA701-IND-253", 1)
	s.NoError(err)
	s.Equal("QN1-EA701-001", id.ID)
	s.Equal(int64(1), id.Sequence)

	// scoped per base client: same base advances, other base starts fresh
	id, err = s.idGen.NextQuotationID(s.ctx, "EA701-IND-253", 2)
	s.NoError(err)
	s.Equal("QN2-EA701-002", id.ID)

	id, err = s.idGen.NextQuotationID(s.ctx, "SW702-USA-253", 1)
	s.NoError(err)
	s.Equal("QN1-SW702-001", id.ID)

	// an undecorated base id is accepted as is
	id, err = s.idGen.NextQuotationID(s.ctx, "EA701", 1)
	s.NoError(err)
	s.Equal("QN1-EA701-003", id.ID)
}

func (s *GeneratorTestSuite) TestNextQuotationIDVersionFloor() {
	id, err := s.idGen.NextQuotationID(s.ctx, "EA701-IND-253", 0)
	s.NoError(err)
	s.Equal("QN1-EA701-001", id.ID)

	_, err = s.idGen.NextQuotationID(s.ctx, "", 1)
	s.Error(err)
}

func (s *GeneratorTestSuite) TestNextInvoiceID() {
	at := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	id, err := s.idGen.NextInvoiceID(s.ctx, "EA701-IND-253", 1, at)
	s.NoError(err)
	s.Equal("IN1-FY24-EA701-001", id.ID)
	s.Equal(int64(1), id.Sequence)
	s.Equal("2425", id.FiscalYear)

	// same client, same fiscal year: counter advances
	id, err = s.idGen.NextInvoiceID(s.ctx, "EA701-IND-253", 1, at)
	s.NoError(err)
	s.Equal("IN1-FY24-EA701-002", id.ID)

	// fiscal year rolls in April and the counter starts fresh
	next := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	id, err = s.idGen.NextInvoiceID(s.ctx, "EA701-IND-253", 1, next)
	s.NoError(err)
	s.Equal("IN1-FY25-EA701-001", id.ID)
	s.Equal("2526", id.FiscalYear)

	// January is still the prior fiscal year
	jan := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	id, err = s.idGen.NextInvoiceID(s.ctx, "EA701-IND-253", 2, jan)
	s.NoError(err)
	s.Equal("IN2-FY24-EA701-003", id.ID)
}

func (s *GeneratorTestSuite) TestSequenceScopesAreIndependent() {
	at := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.idGen.NextClientID(s.ctx, types.ProjectCodeEnterprise, types.PlatformCodeApp, "IND", at)
	s.Require().NoError(err)
	_, err = s.idGen.NextQuotationID(s.ctx, "EA701-IND-247", 1)
	s.Require().NoError(err)
	_, err = s.idGen.NextInvoiceID(s.ctx, "EA701-IND-247", 1, at)
	s.Require().NoError(err)

	s.Equal(int64(1), s.seq.Current(sequence.ClientKey()))
	s.Equal(int64(1), s.seq.Current(sequence.QuotationKey("EA701")))
	s.Equal(int64(1), s.seq.Current(sequence.InvoiceKey("EA701", "2425")))
}

func TestConcurrentAllocation(t *testing.T) {
	ctx := testutil.SetupContext()
	store := testutil.NewInMemorySequenceStore()

	const n = 100
	results := make(chan int64, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.Next(ctx, sequence.ClientKey())
			assert.NoError(t, err)
			results <- v
		}()
	}

	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for v := range results {
		assert.False(t, seen[v], "value %d issued twice", v)
		seen[v] = true
	}

	// exactly the values 1..n, each once
	assert.Len(t, seen, n)
	for i := int64(1); i <= n; i++ {
		assert.True(t, seen[i], "value %d never issued", i)
	}
}
