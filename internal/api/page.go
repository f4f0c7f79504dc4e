package api

// indexPage is the static page served at "/". It talks to the JSON endpoints
// from the browser; user-supplied text is always rendered through escapeHtml,
// never interpolated into markup directly.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Simple Form API</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }
        .container { max-width: 900px; margin: 0 auto; }
        h1 {
            color: white;
            text-align: center;
            margin-bottom: 30px;
            font-size: 2.5em;
        }
        .form-container, .data-container {
            background: white;
            border-radius: 10px;
            padding: 30px;
            margin-bottom: 30px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.3);
        }
        h2 {
            color: #667eea;
            margin-bottom: 20px;
            border-bottom: 3px solid #667eea;
            padding-bottom: 10px;
        }
        .form-group { margin-bottom: 20px; }
        label { display: block; margin-bottom: 5px; color: #333; font-weight: 600; }
        input, textarea {
            width: 100%;
            padding: 12px;
            border: 2px solid #e0e0e0;
            border-radius: 5px;
            font-size: 14px;
        }
        textarea { resize: vertical; min-height: 100px; }
        button {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 12px 30px;
            border: none;
            border-radius: 5px;
            cursor: pointer;
            font-size: 16px;
            font-weight: 600;
            margin-right: 10px;
        }
        .message { padding: 12px; border-radius: 5px; margin-bottom: 20px; display: none; }
        .message.success { background: #d4edda; color: #155724; }
        .message.error { background: #f8d7da; color: #721c24; }
        .data-item {
            border: 2px solid #e0e0e0;
            border-radius: 5px;
            padding: 15px;
            margin-bottom: 15px;
        }
        .data-item p { margin-bottom: 5px; color: #333; }
        .timestamp { color: #999; font-size: 0.85em; }
        .no-data { color: #999; text-align: center; padding: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Simple Form API</h1>

        <div class="form-container">
            <h2>Submit Details</h2>
            <div id="statusMessage" class="message"></div>
            <form id="detailForm">
                <div class="form-group">
                    <label for="name">Name</label>
                    <input type="text" id="name" required maxlength="100">
                </div>
                <div class="form-group">
                    <label for="email">Email</label>
                    <input type="email" id="email" required>
                </div>
                <div class="form-group">
                    <label for="message">Message</label>
                    <textarea id="message" required maxlength="500"></textarea>
                </div>
                <button type="submit">Submit</button>
            </form>
        </div>

        <div class="data-container">
            <h2>Submitted Details</h2>
            <button onclick="loadData()">Refresh</button>
            <button onclick="clearAll()">Clear All</button>
            <div id="dataDisplay" style="margin-top: 20px;"></div>
        </div>
    </div>

    <script>
        document.getElementById('detailForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const formData = {
                name: document.getElementById('name').value,
                email: document.getElementById('email').value,
                message: document.getElementById('message').value
            };
            try {
                const response = await fetch('/postDetails', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify(formData)
                });
                if (response.ok) {
                    showMessage('Details submitted successfully!', 'success');
                    document.getElementById('detailForm').reset();
                    loadData();
                } else {
                    const error = await response.json();
                    showMessage('Error: ' + formatError(error), 'error');
                }
            } catch (error) {
                showMessage('Error: ' + error.message, 'error');
            }
        });

        async function loadData() {
            const displayDiv = document.getElementById('dataDisplay');
            try {
                const response = await fetch('/getDetails');
                const data = await response.json();
                if (data.length === 0) {
                    displayDiv.innerHTML = '<div class="no-data">No data submitted yet. Fill out the form above to get started!</div>';
                    return;
                }
                displayDiv.innerHTML = data.map(item => ` + "`" + `
                    <div class="data-item">
                        <p><strong>Name:</strong> ${escapeHtml(item.name)}</p>
                        <p><strong>Email:</strong> ${escapeHtml(item.email)}</p>
                        <p><strong>Message:</strong> ${escapeHtml(item.message)}</p>
                        <p class="timestamp">Submitted: ${escapeHtml(item.created_at)}</p>
                    </div>
                ` + "`" + `).join('');
            } catch (error) {
                displayDiv.innerHTML = '<div class="no-data">Failed to load data.</div>';
            }
        }

        async function clearAll() {
            if (!confirm('Are you sure you want to clear all details?')) {
                return;
            }
            try {
                const response = await fetch('/clearDetails', { method: 'DELETE' });
                if (response.ok) {
                    const result = await response.json();
                    showMessage('Cleared ' + result.count + ' record(s).', 'success');
                    loadData();
                }
            } catch (error) {
                showMessage('Error: ' + error.message, 'error');
            }
        }

        function formatError(error) {
            if (Array.isArray(error.detail)) {
                return error.detail.map(d => d.field + ' ' + d.constraint).join('; ');
            }
            return error.detail || 'Submission failed';
        }

        function showMessage(text, type) {
            const messageDiv = document.getElementById('statusMessage');
            messageDiv.textContent = text;
            messageDiv.className = 'message ' + type;
            messageDiv.style.display = 'block';
            setTimeout(() => { messageDiv.style.display = 'none'; }, 5000);
        }

        // Escape HTML to prevent XSS
        function escapeHtml(text) {
            const div = document.createElement('div');
            div.textContent = text;
            return div.innerHTML;
        }

        loadData();
    </script>
</body>
</html>
`
