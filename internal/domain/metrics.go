package domain

type MetricsCollector interface {
	RecordCheck(CheckResult)
	RecordNotification(sink string, err error)
	RecordRun(domains int, alerts int)
}
