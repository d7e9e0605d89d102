package rtosutil

// logger tuning
const kLogRecords = 16
const kRecordCap = 128

// uptime string is SSSSSSSS.cc
const kTimeStrCap = 8 + 2 + 1
