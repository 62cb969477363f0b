package common

// BFScriptVersion is the current compiler version.
const BFScriptVersion = "0.2.0"

// ProjectFileName is the name of the project configuration file searched for
// in the directory of the input source file.
const ProjectFileName = "bfs-proj.toml"
