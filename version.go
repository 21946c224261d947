package ultrastar

// Version is the semantic version of the ultrastar library.
const Version = "0.1.0"
