package metrics

// InitializeMetrics pre-populates the expected label combinations so that
// every metric is exported from the first Prometheus scrape. formatKeys are
// the keys registered at startup.
func InitializeMetrics(formatKeys []string) {
	for _, key := range formatKeys {
		for _, status := range []string{StatusSuccess, StatusInvalid} {
			FormatRendersTotal.WithLabelValues(key, status)
		}
	}
	// Unknown keys are folded into a single series to bound cardinality.
	FormatRendersTotal.WithLabelValues(UnknownKeyLabel, StatusUnknown)

	for _, status := range []string{StatusSuccess, StatusError, StatusInvalid} {
		FormatRegistrationsTotal.WithLabelValues(status)
	}

	for _, status := range []string{StatusSuccess, StatusUnknown} {
		ContentTypeLookupsTotal.WithLabelValues(status)
	}

	for _, result := range []string{"valid", "invalid"} {
		ISO8601ValidationsTotal.WithLabelValues(result)
	}

	for _, status := range []string{StatusSuccess, "failure", "disabled"} {
		AuthAttemptsTotal.WithLabelValues(status)
	}

	for _, op := range []string{"initialize_schema", "save_format", "list_formats", "count_formats"} {
		DBQueryTotal.WithLabelValues(op, StatusSuccess)
		DBQueryTotal.WithLabelValues(op, StatusError)
		DBQueryDuration.WithLabelValues(op)
	}
}

// UnknownKeyLabel is the key label recorded for renders of unregistered keys.
const UnknownKeyLabel = "_unknown"
