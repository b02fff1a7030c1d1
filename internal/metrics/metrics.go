package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ApprovalAttempts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pt_payment_approval_attempts_total",
			Help: "Number of calls made to the approval gateway",
		},
	)

	CompletedPayments = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pt_payments_completed_total",
			Help: "Number of PT payments completed",
		},
	)

	PaymentFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pt_payment_failures_total",
			Help: "Number of failed PT payment operations by error code",
		},
		[]string{"code"},
	)

	PurgedAccounts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "accounts_purged_total",
			Help: "Number of withdrawn accounts removed by the cleanup sweep",
		},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(ApprovalAttempts, CompletedPayments, PaymentFailures, PurgedAccounts)
}
