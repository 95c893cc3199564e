package sim

var (
	Choose        = choose
	SoftmaxStable = softmaxStable
	WriteChartTo  = writeChart
)
