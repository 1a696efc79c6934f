package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/creditbridge/credit-service/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T, ttl time.Duration) (*OfferCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewOfferCacheWithClient(client, ttl)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func testOffers() []models.LoanOffer {
	return []models.LoanOffer{
		{
			BankID:             "ally",
			BankName:           "Ally Bank",
			LoanType:           models.LoanPersonal,
			ProductName:        "Personal Loan",
			InterestRate:       8.99,
			MaxAmount:          35000,
			Terms:              "3-7 year terms available",
			Requirements:       []string{"Steady Income"},
			ApprovalLikelihood: 80,
			Features:           []string{"Fixed Rate"},
		},
	}
}

func TestOfferCachePutGet(t *testing.T) {
	c, _ := setupCache(t, 7*24*time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "user-1", testOffers()))

	offers, ok, err := c.Get(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testOffers(), offers)
}

func TestOfferCacheMiss(t *testing.T) {
	c, _ := setupCache(t, time.Hour)

	offers, ok, err := c.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, offers)
}

func TestOfferCacheExpiry(t *testing.T) {
	c, mr := setupCache(t, 7*24*time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "user-1", testOffers()))

	mr.FastForward(7*24*time.Hour + time.Minute)

	_, ok, err := c.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOfferCacheOverwrite(t *testing.T) {
	c, _ := setupCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "user-1", testOffers()))

	updated := testOffers()
	updated[0].ApprovalLikelihood = 95
	require.NoError(t, c.Put(ctx, "user-1", updated))

	offers, ok, err := c.Get(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 95, offers[0].ApprovalLikelihood)
}
