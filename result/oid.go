package result

// Well-known PostgreSQL type OIDs, used as the declared-type numbering for
// columns regardless of which executor produced the result.
const (
	OIDBool        uint32 = 16
	OIDBytea       uint32 = 17
	OIDInt8        uint32 = 20
	OIDInt2        uint32 = 21
	OIDInt4        uint32 = 23
	OIDText        uint32 = 25
	OIDFloat4      uint32 = 700
	OIDFloat8      uint32 = 701
	OIDUnknown     uint32 = 705
	OIDVarchar     uint32 = 1043
	OIDDate        uint32 = 1082
	OIDTimestamp   uint32 = 1114
	OIDTimestampTZ uint32 = 1184
	OIDNumeric     uint32 = 1700
	OIDUUID        uint32 = 2950
)

var oidByName = map[string]uint32{
	"bool":        OIDBool,
	"boolean":     OIDBool,
	"bytea":       OIDBytea,
	"int2":        OIDInt2,
	"smallint":    OIDInt2,
	"int4":        OIDInt4,
	"int":         OIDInt4,
	"integer":     OIDInt4,
	"int8":        OIDInt8,
	"bigint":      OIDInt8,
	"text":        OIDText,
	"varchar":     OIDVarchar,
	"float4":      OIDFloat4,
	"real":        OIDFloat4,
	"float8":      OIDFloat8,
	"double":      OIDFloat8,
	"numeric":     OIDNumeric,
	"decimal":     OIDNumeric,
	"date":        OIDDate,
	"timestamp":   OIDTimestamp,
	"timestamptz": OIDTimestampTZ,
	"uuid":        OIDUUID,
}

var nameByOID = map[uint32]string{
	OIDBool:        "bool",
	OIDBytea:       "bytea",
	OIDInt2:        "int2",
	OIDInt4:        "int4",
	OIDInt8:        "int8",
	OIDText:        "text",
	OIDVarchar:     "varchar",
	OIDFloat4:      "float4",
	OIDFloat8:      "float8",
	OIDUnknown:     "unknown",
	OIDDate:        "date",
	OIDTimestamp:   "timestamp",
	OIDTimestampTZ: "timestamptz",
	OIDNumeric:     "numeric",
	OIDUUID:        "uuid",
}

// OIDForTypeName maps a lower-case SQL type name to its OID. Unrecognized
// names map to OIDUnknown.
func OIDForTypeName(name string) uint32 {
	if oid, ok := oidByName[name]; ok {
		return oid
	}
	return OIDUnknown
}

// TypeNameForOID is the inverse of OIDForTypeName for known OIDs; other
// OIDs yield "unknown".
func TypeNameForOID(oid uint32) string {
	if name, ok := nameByOID[oid]; ok {
		return name
	}
	return "unknown"
}
