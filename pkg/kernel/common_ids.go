package kernel

type ReportID string

func NewReportID(id string) ReportID { return ReportID(id) }
func (r ReportID) String() string    { return string(r) }
func (r ReportID) IsEmpty() bool     { return string(r) == "" }

type DatasetVersion string

func NewDatasetVersion(v string) DatasetVersion { return DatasetVersion(v) }
func (v DatasetVersion) String() string         { return string(v) }
func (v DatasetVersion) IsEmpty() bool          { return string(v) == "" }
