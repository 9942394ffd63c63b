package clytia

// Version is the library and CLI version.
const Version = "0.3.0"
