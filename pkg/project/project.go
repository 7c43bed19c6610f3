package project

// Name is the name reported to MCP clients during initialization
const Name = "calc-mcp"

// Version is the server version reported to MCP clients
const Version = "0.1.0"
