package render

// Page templates share the dark terminal look of the reference pages,
// trimmed to the parts that matter. All interpolated values are
// HTML-escaped by the caller.

const versionPage = `<!DOCTYPE html>
<html>
<head>
    <title>Version Information</title>
    <style>
        body {
            font-family: 'Courier New', monospace;
            background: #1a1a1a;
            color: #e0e0e0;
            padding: 40px;
            line-height: 1.6;
        }
        .terminal {
            background: #252525;
            border-radius: 6px;
            padding: 20px;
            border: 1px solid #333;
        }
        .info-title { color: #6ba2ff; font-size: 24px; margin: 0 0 20px 0; }
        .label { color: #a0a0a0; padding-right: 20px; }
        .value { color: #6ba2ff; }
        pre {
            background: #1a1a1a;
            padding: 15px;
            border-radius: 4px;
            border: 1px solid #404040;
            overflow-x: auto;
        }
    </style>
</head>
<body>
    <div class="terminal">
        <h1 class="info-title">Server Version Information</h1>
        <div>
            <span class="label">Version:</span> <span class="value">%s</span><br>
            <span class="label">Platform:</span> <span class="value">%s</span><br>
            <span class="label">Architecture:</span> <span class="value">%s</span><br>
            <span class="label">Build Time:</span> <span class="value">%s</span>
        </div>
        <h2 class="info-title">Raw JSON Response</h2>
        <pre>%s</pre>
    </div>
</body>
</html>`

const notFoundPage = `<!DOCTYPE html>
<html>
<head>
    <title>404 - Not Found</title>
    <style>
        body {
            font-family: monospace;
            background: #1c1c1c;
            color: #d4d4d4;
            padding: 2rem;
            line-height: 1.5;
        }
        .terminal {
            background: #252525;
            border: 1px solid #333;
            border-radius: 8px;
            padding: 2rem;
            max-width: 800px;
            margin: 2rem auto;
        }
        .error-code { color: #ff6b6b; font-size: 1.5rem; margin-bottom: 1.5rem; }
        .path-box {
            background: #1c1c1c;
            border: 1px solid #333;
            border-radius: 4px;
            padding: 1rem;
            margin: 1rem 0;
            color: #4d9375;
        }
        table { width: 100%%; border-collapse: collapse; margin: 1rem 0; }
        th { text-align: left; padding: 0.5rem; color: #808080; border-bottom: 1px solid #333; }
        td { padding: 0.5rem; border-bottom: 1px solid #2a2a2a; }
        .method { color: #569cd6; }
        .path { color: #4d9375; }
        .desc { color: #808080; }
    </style>
</head>
<body>
    <div class="terminal">
        <div class="error-code">Error: Path Not Found</div>
        <p>The requested path does not exist:</p>
        <div class="path-box">%s</div>
        <p>Available Endpoints:</p>
        <table>
            <tr><th>Method</th><th>Path</th><th>Description</th></tr>
            <tr><td class="method">GET</td><td class="path">/version</td><td class="desc">Server version information</td></tr>
            <tr><td class="method">GET</td><td class="path">/healthz</td><td class="desc">Health check endpoint</td></tr>
            <tr><td class="method">GET</td><td class="path">/metrics</td><td class="desc">Request counters</td></tr>
        </table>
        <p class="desc">Tip: Use curl -v for detailed request/response information</p>
    </div>
</body>
</html>`

const badRequestPage = `<!DOCTYPE html>
<html>
<head>
    <title>400 - Bad Request</title>
    <style>
        body {
            font-family: 'Courier New', monospace;
            background: #1a1a1a;
            color: #e0e0e0;
            padding: 40px;
            line-height: 1.6;
        }
        .terminal {
            background: #252525;
            border-radius: 6px;
            padding: 20px;
            border: 1px solid #333;
        }
        .error-title { color: #ff6b6b; font-size: 24px; margin: 0 0 20px 0; }
    </style>
</head>
<body>
    <div class="terminal">
        <h1 class="error-title">400 - Bad Request</h1>
        <p>The request was malformed or invalid.</p>
    </div>
</body>
</html>`
