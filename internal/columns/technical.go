package columns

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
)

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.0.0",
}

// uuidString builds a version-4 UUID from the caller's rand source.
func uuidString(rng *rand.Rand) string {
	uuidBytes := make([]byte, 16)
	rng.Read(uuidBytes)
	uuidBytes[6] = (uuidBytes[6] & 0x0f) | 0x40
	uuidBytes[8] = (uuidBytes[8] & 0x3f) | 0x80
	u, err := uuid.FromBytes(uuidBytes)
	if err != nil {
		// 16 bytes always form a valid UUID; FromBytes only rejects bad lengths.
		return uuid.NewString()
	}
	return u.String()
}

func registerTechnical(r *Registry) {
	r.Register("ipAddress", Independent(func(_ *rand.Rand) any {
		return faker.IPv4()
	}))
	r.Register("userAgent", Independent(func(rng *rand.Rand) any {
		return choice(rng, userAgents)
	}))
	r.Register("apiKey", Independent(func(rng *rand.Rand) any {
		return uuidString(rng)
	}))
	r.Register("uuid", Independent(func(rng *rand.Rand) any {
		return uuidString(rng)
	}))
	// Event timestamp within the last year, RFC 3339.
	r.Register("timestamp", Independent(func(rng *rand.Rand) any {
		offset := time.Duration(rng.Int63n(int64(365 * 24 * time.Hour)))
		return time.Now().Add(-offset).UTC().Format(time.RFC3339)
	}))
}
