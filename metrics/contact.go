package metrics

// Notification outcomes
const (
	OutcomeSent         = "sent"
	OutcomeFailed       = "failed"
	OutcomeTimeout      = "timeout"
	OutcomeUnconfigured = "unconfigured"
)

// ObserveNotification counts one contact notification attempt
func ObserveNotification(channel, outcome string) {
	register()
	contactNotifications.WithLabelValues(channel, outcome).Inc()
}
