package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/ratelimit"
)

// BookingRateLimit limita tentativas de reserva por identidade autenticada.
// Falha do Redis deixa passar (e loga): limite é proteção, não regra de
// negócio.
func BookingRateLimit(limiter *ratelimit.Limiter, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)

		ok, err := limiter.Allow(c.Request.Context(), identity.UserID)
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
		}
		if !ok {
			httperr.TooManyRequests(c, "too_many_requests", "Muitas tentativas, aguarde um pouco.")
			c.Abort()
			return
		}

		c.Next()
	}
}
