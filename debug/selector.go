package debug

type Tselector string

// ALWAYS
const (
	ALWAYS Tselector = "ALWAYS"
	ERROR            = "ERROR"
	NEVER            = "NEVER"
)

// Tests
const (
	TEST Tselector = "TEST"
)

// Config
const (
	CONFIG Tselector = "CONFIG"
)

// MR
const (
	MAPPER      Tselector = "MAPPER"
	REDUCER               = "REDUCER"
	SORTREDUCER           = "SORTREDUCER"
	MR_TPT                = "MR_TPT"
)

// I/O
const (
	READER     Tselector = "READER"
	READER_ERR           = READER + "_ERR"
	WRITER               = "WRITER"
	WRITER_ERR           = WRITER + "_ERR"
	S3CLNT               = "S3CLNT"
)
